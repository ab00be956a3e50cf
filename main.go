package main

import (
	"fmt"
	"os"

	"github.com/fzft/go-resp/cmd"
	"github.com/fzft/go-resp/log"
	"go.uber.org/zap"
)

func main() {
	if err := log.InitLogger(); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %s\n", err)
		os.Exit(2)
	}
	defer log.Logger.Sync()
	log.Logger.Debug("starting resp-inspect", zap.String("build", RespBuildIdRaw()))

	cli := cmd.NewRespCli(os.Stdin, os.Stdout, os.Stderr)
	cli.BuildInfo(RespGitSHA1(), RespGitDirty())
	if err := cli.Run(os.Args[1:]); err != nil {
		log.Logger.Sync()
		os.Exit(1)
	}
}
