package dashboard

const (
	testAPIToken            = "11235813213455"
	testClientAllowInsecure = true
	testEmail               = "tony@starkindustries.com"
	testPassword            = "iamironman"
	testName                = "Tony Stark"
)
