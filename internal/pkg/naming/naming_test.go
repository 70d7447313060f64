package naming

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already clean", "user", "user"},
		{"uppercase", "User", "user"},
		{"mixed punctuation", "blog-post!", "blogpost"},
		{"keeps underscores", "blog_post", "blog_post"},
		{"digits survive", "model2", "model2"},
		{"fullwidth characters fold via NFKC", "ｕｓｅｒ", "user"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user", "User"},
		{"blog_post", "BlogPost"},
		{"api_key_entry", "ApiKeyEntry"},
	}

	for _, tt := range tests {
		if got := TypeName(tt.input); got != tt.want {
			t.Errorf("TypeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestForModel(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantSingular string
		wantPlural   string
		wantType     string
	}{
		{"singular input", "user", "user", "users", "User"},
		{"plural input singularizes", "users", "user", "users", "User"},
		{"capitalized input", "Post", "post", "posts", "Post"},
		{"snake case compound", "blog_posts", "blog_post", "blog_posts", "BlogPost"},
		{"irregular plural", "people", "person", "people", "Person"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForModel(tt.input)
			if got.Singular != tt.wantSingular {
				t.Errorf("Singular = %q, want %q", got.Singular, tt.wantSingular)
			}
			if got.Plural != tt.wantPlural {
				t.Errorf("Plural = %q, want %q", got.Plural, tt.wantPlural)
			}
			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
		})
	}
}

func TestIsValidAppName(t *testing.T) {
	valid := []string{"blog", "my_app", "App2", "_private"}
	invalid := []string{"", "2cool", "my-app", "my app", "app!"}

	for _, name := range valid {
		if !IsValidAppName(name) {
			t.Errorf("IsValidAppName(%q) = false, want true", name)
		}
	}
	for _, name := range invalid {
		if IsValidAppName(name) {
			t.Errorf("IsValidAppName(%q) = true, want false", name)
		}
	}
}
