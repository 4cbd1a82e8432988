package logutil

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInfofAndErrorfWritePrefixedLines(t *testing.T) {
	var buf bytes.Buffer
	old := std
	std = log.New(&buf, "", 0)
	defer func() { std = old }()

	Infof(context.Background(), "hello %s", "world")
	require.Contains(t, buf.String(), "INFO  hello world")

	buf.Reset()
	Errorf(context.Background(), "broke: %v", "oops")
	require.Contains(t, buf.String(), "ERROR broke: oops")
}
