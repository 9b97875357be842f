package sessioncache

import (
	"encoding/json"
	"time"

	"github.com/go-redis/redis"
	"github.com/golang/glog"
	"github.com/krancour/dashboard"
)

type redisClient interface {
	Get(key string) *redis.StringCmd
	Set(key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(keys ...string) *redis.IntCmd
}

// RedisCache is a Cache shared by every client pointed at the same Redis
// database. Redis failures degrade to cache misses.
type RedisCache struct {
	redisClient redisClient
	prefix      string
	now         func() time.Time
}

// NewRedisCache returns a RedisCache that namespaces its keys with prefix.
func NewRedisCache(redisClient *redis.Client, prefix string) *RedisCache {
	return &RedisCache{
		redisClient: redisClient,
		prefix:      prefix,
		now:         time.Now,
	}
}

func (r *RedisCache) key(key string) string {
	return r.prefix + key
}

func (r *RedisCache) Get(key string) (Entry, bool) {
	entry := Entry{}
	entryBytes, err := r.redisClient.Get(r.key(key)).Bytes()
	if err == redis.Nil {
		return entry, false
	}
	if err != nil {
		glog.Warningf("error reading %q from redis: %s", key, err)
		return entry, false
	}
	if err := json.Unmarshal(entryBytes, &entry); err != nil {
		glog.Warningf("error unmarshaling cached entry %q: %s", key, err)
		return Entry{}, false
	}
	if entry.Expired(r.now()) {
		return Entry{}, false
	}
	return entry, true
}

func (r *RedisCache) Set(
	key string,
	state dashboard.SessionState,
	policy Policy,
) {
	entryBytes, err := json.Marshal(
		Entry{
			State:     state,
			FetchedAt: r.now(),
			Policy:    policy,
		},
	)
	if err != nil {
		glog.Warningf("error marshaling cache entry %q: %s", key, err)
		return
	}
	if err := r.redisClient.Set(
		r.key(key),
		entryBytes,
		policy.Retain,
	).Err(); err != nil {
		glog.Warningf("error writing %q to redis: %s", key, err)
	}
}

func (r *RedisCache) Delete(key string) {
	if err := r.redisClient.Del(r.key(key)).Err(); err != nil {
		glog.Warningf("error deleting %q from redis: %s", key, err)
	}
}
