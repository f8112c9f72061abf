package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tourly/internal/models/db_models"
	"tourly/pkg/auth"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func adminIdentity() auth.Identity {
	return auth.Identity{SubjectID: uuid.New(), Role: auth.RoleAdmin, SessionID: uuid.NewString(), ExpiresAt: time.Now().Add(time.Hour)}
}

func userIdentity(id uuid.UUID) auth.Identity {
	return auth.Identity{SubjectID: id, Role: auth.RoleUser, SessionID: uuid.NewString(), ExpiresAt: time.Now().Add(time.Hour)}
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func seedAccount(t *testing.T, db *gorm.DB, email string) *db_models.Account {
	t.Helper()
	account := &db_models.Account{Name: "Ama", Email: email, PasswordHash: "x", Role: "user"}
	require.NoError(t, db.WithContext(context.Background()).Omit("Reviews").Create(account).Error)
	return account
}

type testFile struct {
	name    string
	content []byte
}

// multipartFiles round-trips files through a real multipart form so the
// headers can be opened the way gin hands them over.
func multipartFiles(t *testing.T, files ...testFile) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="files"; filename="`+f.name+`"`)
		h.Set("Content-Type", "application/octet-stream")
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["files"]
}

func mustParseUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}
