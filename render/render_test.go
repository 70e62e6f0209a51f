package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shipq/namecase/variations"
)

func blogPost() variations.Schema {
	return variations.Schema{Model: "blog-post", ModelPlural: "blog-posts"}
}

func mustParse(t *testing.T, name, text string) *Template {
	t.Helper()
	tmpl, err := Parse(name, text)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return tmpl
}

func TestTemplate_Names(t *testing.T) {
	tmpl := mustParse(t, "names", "{{.Names.ModelParam}}|{{.Names.ModelsParam}}|{{.Config.Application}}")

	out, err := tmpl.Bytes(NewData(blogPost(), variations.Config{Application: "blog"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := string(out), "blogPost: BlogPost|blogPosts: BlogPost[]|blog"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFuncs(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{`{{labelize "blog-post"}}`, "BlogPost"},
		{`{{camelize "blog_post"}}`, "blogPost"},
		{`{{snakeCaselize "blog-post"}}`, "blog_post"},
		{`{{wordSnakeCaselize "MyWidget-Name"}}`, "my_widget_name"},
		{`{{placeholderize "createdAt"}}`, "Created At"},
		{`{{dashCamelTitle "my-widget"}}`, "myWidget"},
		{`{{plural "category"}}`, "categories"},
		{`{{singular "people"}}`, "person"},
		{`{{(variations "tag" "tags").ModelsParam}}`, "tags: Tag[]"},
		{`{{"blog-post" | labelize | snakeCaselize}}`, "blogpost"},
		{`{{capitalize 42}}`, ""},
		{`{{labelize .Schema.Props}}`, ""},
		{`{{labelize .Schema.Model}}`, "BlogPost"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			tmpl := mustParse(t, "fn", tt.text)
			out, err := tmpl.Bytes(NewData(blogPost(), variations.Config{}))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(out) != tt.expected {
				t.Errorf("got %q, want %q", out, tt.expected)
			}
		})
	}
}

func TestParse_Error(t *testing.T) {
	if _, err := Parse("bad", "{{.Names.Obj"); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := Parse("unknown", "{{nosuchfunc .}}"); err == nil {
		t.Fatal("expected error for unknown function")
	}
}

func TestOutputPath(t *testing.T) {
	names := variations.ModelNameVariations(blogPost())

	tests := []struct {
		name     string
		expected string
	}{
		{"__snakeCase__.go", "blog_post.go"},
		{"__models__/__obj__.ts", filepath.Join("BlogPosts", "blogPost.ts")},
		{"README.md", filepath.Join("blog_post", "README.md")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := mustParse(t, tt.name, "")
			if got := tmpl.OutputPath(names); got != tt.expected {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.go.tmpl":   "{{.Names.Model}}",
		"a.ts.tmpl":   "{{.Names.Obj}}",
		"notes.txt":   "ignored",
		"broken.tmpl": "",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	templates, err := LoadTemplates(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, tmpl := range templates {
		names = append(names, tmpl.Name)
	}
	if got := strings.Join(names, ","); got != "a.ts,b.go,broken" {
		t.Errorf("got templates %q", got)
	}
}

func TestLoadTemplates_ParseError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.tmpl"), []byte("{{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTemplates(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestExamples(t *testing.T) {
	s := variations.Schema{
		Model:       "blog-post",
		ModelPlural: "blog-posts",
		Props: []variations.Prop{
			{"name": "title"},
			{"name": "view-count", "type": "int"},
		},
	}
	data := NewData(s, variations.Config{Name: "my-blog", Application: "blog"})

	service := mustParse(t, "__snakeCase__.service.ts", Examples["__snakeCase__.service.ts.tmpl"])
	out, err := service.Bytes(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"export class BlogPostsService",
		"create(blogPost: BlogPost)",
		"upsertAll(blogPosts: BlogPost[])",
		"'/api/blog_posts'",
		"${BASE_URL}/${blogPost.id}",
	} {
		if !strings.Contains(string(out), want) {
			t.Errorf("service output missing %q:\n%s", want, out)
		}
	}

	model := mustParse(t, "__snakeCase__.go", Examples["__snakeCase__.go.tmpl"])
	out, err = model.Bytes(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"package my_blog",
		"// BlogPost is a Blog Post.",
		"type BlogPost struct {",
		"Title string `json:\"title\"`",
		"ViewCount int `json:\"viewCount\"`",
	} {
		if !strings.Contains(string(out), want) {
			t.Errorf("model output missing %q:\n%s", want, out)
		}
	}
}
