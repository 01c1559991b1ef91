package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/newsprint"
	"gopkg.in/yaml.v2"
)

// URLToPath converts an article URL to a relative file path.
// Example: https://example.com/news/2024/story → news/2024/story.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	for _, segment := range strings.Split(path, "/") {
		if segment == ".." {
			return "", newsprint.Errorf(newsprint.EINVALID, "path traversal in URL: %s", rawURL)
		}
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.md in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	// Drop an existing extension such as .html before appending .md
	path = strings.TrimSuffix(path, filepath.Ext(path))

	return path + ".md", nil
}

type frontmatter struct {
	Source    string   `yaml:"source"`
	Title     string   `yaml:"title"`
	Authors   []string `yaml:"authors,omitempty"`
	Published string   `yaml:"published,omitempty"`
	Keywords  []string `yaml:"keywords,omitempty"`
	Language  string   `yaml:"language,omitempty"`
}

// FormatArticle formats an article body with YAML frontmatter.
func FormatArticle(a *newsprint.Article, body string) (string, error) {
	fm := frontmatter{
		Source:   a.URL,
		Title:    a.Title,
		Authors:  a.Authors,
		Keywords: a.Keywords,
		Language: a.Language(),
	}
	if !a.PublishDate.IsZero() {
		fm.Published = a.PublishDate.Format("2006-01-02")
	}
	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String(), nil
}

// Ensure FileStore implements newsprint.ArticleWriter at compile time.
var _ newsprint.ArticleWriter = (*FileStore)(nil)

// FileStore writes articles as markdown files with atomic update semantics.
// Files are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir   string
	name      string
	converter newsprint.Converter
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
// The converter renders ArticleHTML as markdown; when nil the plain text is
// written instead.
func NewFileStore(baseDir, name string, converter newsprint.Converter) *FileStore {
	return &FileStore{
		baseDir:   baseDir,
		name:      name,
		converter: converter,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// WriteArticle saves a parsed article to the temporary directory.
func (s *FileStore) WriteArticle(ctx context.Context, a *newsprint.Article) error {
	if err := a.RequireParsed(); err != nil {
		return err
	}

	relPath, err := URLToPath(a.URL)
	if err != nil {
		return err
	}

	body := a.Text
	if s.converter != nil && a.ArticleHTML != "" {
		body, err = s.converter.Convert(a.ArticleHTML)
		if err != nil {
			return err
		}
	}
	content, err := FormatArticle(a, body)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(content), 0644)
}

// Commit replaces the output directory with the saved files.
func (s *FileStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved files.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
