package main

// Set at build time with -ldflags "-X main.gitSHA1=... -X main.gitDirty=...".
var (
	gitSHA1   string = "unknown"
	gitDirty  string = "unknown"
	buildID   string = "unknown"
	buildDate string = "unknown"
)

func RespGitSHA1() string {
	return gitSHA1
}

func RespGitDirty() string {
	return gitDirty
}

func RespBuildIdRaw() string {
	return buildID + buildDate + gitSHA1 + gitDirty
}
