package commands

import (
	"fmt"
	"os"

	"mediahub/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("mediahub error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Print(`mediahub: media upload service backed by MinIO and PostgreSQL.

usage:
  mediahub run <config.yml>     start the HTTP server and background workers
  mediahub sweep <config.yml>   remove unreferenced blobs once and exit
  mediahub version              print the version
  mediahub help                 show this message
`) //nolint
}
