package appmode_test

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/reader"
	"github.com/stretchr/testify/require"
)

func TestRunSearch(t *testing.T) {
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\nDuct tape.\n"
	fileName := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(fileName, []byte(contents), 0o600))
	binaryName := filepath.Join(t.TempDir(), "binary.dat")
	require.NoError(t, os.WriteFile(binaryName, []byte("caf\xff\nok\n"), 0o600))

	cases := []struct {
		name    string
		cfg     *model.SearchConfig
		wantOut string
		wantErr error
	}{
		{
			name:    "Positive - case sensitive",
			cfg:     &model.SearchConfig{Query: "duct", FilePath: fileName, CaseSensitive: true},
			wantOut: "safe, fast, productive.\n",
		},
		{
			name:    "Positive - case insensitive",
			cfg:     &model.SearchConfig{Query: "rUsT", FilePath: fileName, CaseSensitive: false},
			wantOut: "Rust:\nTrust me.\n",
		},
		{
			name:    "Positive - nothing found prints nothing",
			cfg:     &model.SearchConfig{Query: "xyz", FilePath: fileName, CaseSensitive: true},
			wantOut: "",
		},
		{
			name:    "Positive - empty query prints whole file",
			cfg:     &model.SearchConfig{Query: "", FilePath: fileName, CaseSensitive: true},
			wantOut: contents,
		},
		{
			name:    "Negative - file is not valid UTF-8",
			cfg:     &model.SearchConfig{Query: "", FilePath: binaryName, CaseSensitive: true},
			wantErr: reader.ErrFileRead,
		},
		{
			name:    "Negative - file not found",
			cfg:     &model.SearchConfig{Query: "query", FilePath: filepath.Join(t.TempDir(), "filename"), CaseSensitive: true},
			wantErr: reader.ErrFileRead,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			err := appmode.RunSearch(tt.cfg, &out)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Zero(t, out.Len(), "no output expected on failure")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestRunServer(t *testing.T) {
	t.Run("Positive - graceful stop on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

		done := make(chan error, 1)
		go func() { done <- appmode.RunServer(ctx, cancel, srv) }()

		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("RunServer did not return after context cancel")
		}
	})

	t.Run("Negative - listen failure calls stop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		srv := &http.Server{Addr: "127.0.0.1:-1", Handler: http.NotFoundHandler()}

		done := make(chan error, 1)
		go func() { done <- appmode.RunServer(ctx, cancel, srv) }()

		select {
		case err := <-done:
			require.Error(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("RunServer did not return after listen failure")
		}
	})
}
