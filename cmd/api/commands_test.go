package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xiebiao/catalog/internal/interface/http/middleware"
)

func TestReadPassword_Piped(t *testing.T) {
	var prompt bytes.Buffer

	pw, err := readPassword(strings.NewReader("s3cret\r\n"), &prompt)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)
	assert.Empty(t, prompt.String())

	pw, err = readPassword(strings.NewReader("no-newline"), &prompt)
	require.NoError(t, err)
	assert.Equal(t, "no-newline", pw)

	_, err = readPassword(strings.NewReader("   \n"), &prompt)
	assert.Error(t, err)
}

func TestAuditHandler(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handle := auditHandler(zap.New(core))

	body, err := json.Marshal(middleware.AuditEvent{
		Method: "DELETE",
		URL:    "/api/books/3",
		Status: 200,
		User:   "ana@example.com",
		At:     time.Now().UTC(),
	})
	require.NoError(t, err)

	require.NoError(t, handle(context.Background(), "audit.delete", body))
	require.NoError(t, handle(context.Background(), "audit.post", []byte("{not json")))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "[DELETE] /api/books/3 by ana@example.com", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Subset(t, names, []string{"serve", "migrate", "seed", "user", "audit"})

	create, _, err := root.Find([]string{"user", "create"})
	require.NoError(t, err)
	assert.Equal(t, "create", create.Name())
	assert.NotNil(t, create.Flags().Lookup("email"))
}
