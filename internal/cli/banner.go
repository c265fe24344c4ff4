package cli

import (
	"io"

	"github.com/acme/bida/internal/banner"
)

func printBanner(out io.Writer) error {
	report, err := banner.Load()
	if err != nil {
		return err
	}
	_, err = report.WriteTo(out)
	return err
}
