package clinic

import (
	"encoding/json"
	"testing"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://ritu.example", nil, "https://ritu.example"},
		{"https://ritu.example", []string{"blog", "2"}, "https://ritu.example/blog/2/"},
		{"https://ritu.example/", []string{"blog", "3"}, "https://ritu.example/blog/3/"},
		{"http://localhost:3000", []string{"blog", "1"}, "http://localhost:3000/blog/1/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segs...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segs, got, tt.want)
		}
	}
}

func TestClinicJsonLD(t *testing.T) {
	site, _ := loadTestSite(t)
	cfg := SiteConfig{URL: "https://ritu.example", Description: "Diagnostics"}
	var data map[string]any
	if err := json.Unmarshal([]byte(ClinicJsonLD(cfg, site)), &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if data["@type"] != "MedicalClinic" {
		t.Errorf("@type = %v", data["@type"])
	}
	if data["telephone"] != "+91 11 2345 6789" {
		t.Errorf("telephone = %v", data["telephone"])
	}
	if data["email"] != "info@ritudiagnostic.com" {
		t.Errorf("email = %v", data["email"])
	}
	services, _ := data["availableService"].([]any)
	if len(services) != 4 {
		t.Errorf("availableService = %v", data["availableService"])
	}
}

func TestArticleJsonLD(t *testing.T) {
	p := Post{ID: "2", Title: "Blood <Tests>", Excerpt: "x", Date: "Dec 10, 2024", Image: "/images/service-lab.png"}
	cfg := SiteConfig{Name: "Ritu Diagnostic", URL: "https://ritu.example"}
	raw := ArticleJsonLD(p, cfg)
	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if data["url"] != "https://ritu.example/blog/2/" {
		t.Errorf("url = %v", data["url"])
	}
	if data["datePublished"] != "2024-12-10" {
		t.Errorf("datePublished = %v", data["datePublished"])
	}
	if data["image"] != "https://ritu.example/images/service-lab.png" {
		t.Errorf("image = %v", data["image"])
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] == '<' {
			t.Fatal("JSON-LD must not contain a raw '<'")
		}
	}
}
