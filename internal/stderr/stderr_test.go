//go:build !windows

package stderr

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture_LogsLinesUntilClosed(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	c, err := Start(logger)
	require.NoError(t, err)
	_, err = os.Stderr.WriteString("ALSA lib pcm.c: underrun\n\n")
	require.NoError(t, err)
	require.NoError(t, c.Close())

	assert.Contains(t, buf.String(), "ALSA lib pcm.c: underrun")
	assert.Contains(t, buf.String(), "component=stderr")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("level=warning")))
}

func TestCapture_CloseTwice(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	c, err := Start(logger)
	require.NoError(t, err)
	require.NoError(t, c.Close())
	assert.NoError(t, c.Close())

	var none *Capture
	assert.NoError(t, none.Close())
}
