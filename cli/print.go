package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lukehollenback/bittrex/exchange"
	"github.com/pkg/errors"
)

//
// printResponse writes a colored status line followed by the envelope as indented JSON. An envelope
// reporting failure is turned into the command's error so the process exits non-zero.
//
func (a *app) printResponse(w io.Writer, resp exchange.Response) error {
	a.printStatus(w, resp)

	payload, err := json.MarshalIndent(resp.Envelope(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to render response")
	}

	fmt.Fprintln(w, string(payload))

	if apiErr := resp.Err(); apiErr != nil {
		return apiErr
	}

	return nil
}

//
// printCandles writes one line per candle instead of the raw envelope.
//
func (a *app) printCandles(w io.Writer, resp exchange.Response) error {
	a.printStatus(w, resp)

	if apiErr := resp.Err(); apiErr != nil {
		return apiErr
	}

	for _, c := range resp.Candles() {
		fmt.Fprintf(
			w, "%s  O %s  H %s  L %s  C %s  V %s\n",
			c.StartTime().Format("2006-01-02 15:04"),
			c.Open(), c.High(), c.Low(), c.Close(), c.Volume(),
		)
	}

	return nil
}

func (a *app) printStatus(w io.Writer, resp exchange.Response) {
	if resp.Success() {
		fmt.Fprintln(w, a.colors.Bold(a.colors.Green("OK")))

		return
	}

	fmt.Fprintln(w, a.colors.Bold(a.colors.Red(fmt.Sprintf("FAILED: %s", resp.Message()))))
}
