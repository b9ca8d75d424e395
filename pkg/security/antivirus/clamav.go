package antivirus

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dutchcoders/go-clamd"
)

// ClamAVScanner streams files to a clamd daemon (INSTREAM).
type ClamAVScanner struct {
	address string
	client  *clamd.Clamd
}

var _ Scanner = (*ClamAVScanner)(nil)

// NewClamAVScanner accepts "host:port", "tcp://host:port" or a unix socket path.
func NewClamAVScanner(address string) *ClamAVScanner {
	addr := address
	switch {
	case strings.HasPrefix(addr, "/"):
		addr = "unix://" + addr
	case !strings.Contains(addr, "://"):
		addr = "tcp://" + addr
	}
	return &ClamAVScanner{address: addr, client: clamd.NewClamd(addr)}
}

func (c *ClamAVScanner) Name() string {
	return "clamav"
}

func (c *ClamAVScanner) Available(ctx context.Context) bool {
	return c.client.Ping() == nil
}

func (c *ClamAVScanner) Scan(ctx context.Context, filename string, data io.Reader) ScanResult {
	result := ScanResult{ScannerName: c.Name()}

	abort := make(chan bool)
	defer close(abort)

	results, err := c.client.ScanStream(data, abort)
	if err != nil {
		result.Error = fmt.Errorf("clamd scan %s: %w", filename, err)
		return result
	}

	for {
		select {
		case <-ctx.Done():
			result.Error = ctx.Err()
			return result
		case r, ok := <-results:
			if !ok {
				return result
			}
			switch r.Status {
			case clamd.RES_OK:
			case clamd.RES_FOUND:
				result.Infected = true
				result.ThreatName = r.Description
			default:
				result.Error = fmt.Errorf("clamd returned %s: %s", r.Status, r.Description)
			}
		}
	}
}
