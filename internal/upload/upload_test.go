package upload_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mohd-obaidullah/complaint-box/internal/upload"
)

// TestAllowed verifies the extension allow-list, case-insensitively.
func TestAllowed(t *testing.T) {
	for _, name := range []string{"report.pdf", "photo.JPG", "scan.jpeg", "pic.png", "anim.gif", "notes.doc", "notes.docx"} {
		assert.True(t, upload.Allowed(name), "%q should be allowed", name)
	}
	for _, name := range []string{"run.exe", "script.sh", "archive.zip", "notes.txt", "noext", ".pdf.", ""} {
		assert.False(t, upload.Allowed(name), "%q should be rejected", name)
	}
}

// TestSanitizeFilename verifies that path components and shell-hostile
// characters never survive into stored names.
func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"report.pdf":           "report.pdf",
		"../../etc/passwd":     "passwd",
		"my report (1).pdf":    "my_report_1_.pdf",
		"..\\..\\evil.pdf":     "evil.pdf",
		"weird$name;rm -rf.md": "weird_name_rm_-rf.md",
	}
	for in, want := range cases {
		assert.Equal(t, want, upload.SanitizeFilename(in), "input %q", in)
	}
}

// TestStoredName verifies the timestamp prefix layout.
func TestStoredName(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)
	assert.Equal(t, "20240315_093045_report.pdf", upload.StoredName("report.pdf", now))
}

// TestPathRefusesTraversal verifies that download lookups cannot escape
// the upload directory.
func TestPathRefusesTraversal(t *testing.T) {
	store := upload.NewStore(t.TempDir())

	for _, name := range []string{"../secret.pdf", "a/b.pdf", "", ".."} {
		_, err := store.Path(name)
		assert.Error(t, err, "name %q must be refused", name)
	}

	path, err := store.Path("20240315_093045_report.pdf")
	assert.NoError(t, err)
	assert.Contains(t, path, "20240315_093045_report.pdf")
}
