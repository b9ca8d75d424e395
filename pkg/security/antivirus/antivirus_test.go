package antivirus

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPicksImplementation(t *testing.T) {
	assert.Equal(t, "noop", New("").Name())
	assert.Equal(t, "clamav", New("clamav:3310").Name())
}

func TestClamAVAddressNormalisation(t *testing.T) {
	assert.Equal(t, "tcp://clamav:3310", NewClamAVScanner("clamav:3310").address)
	assert.Equal(t, "unix:///var/run/clamav/clamd.ctl", NewClamAVScanner("/var/run/clamav/clamd.ctl").address)
	assert.Equal(t, "tcp://10.0.0.5:3310", NewClamAVScanner("tcp://10.0.0.5:3310").address)
}

func TestNoOpScannerIsClean(t *testing.T) {
	res := NewNoOpScanner().Scan(context.Background(), "cv.pdf", strings.NewReader("x"))
	assert.False(t, res.Infected)
	assert.NoError(t, res.Error)
}
