package models

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw     string
		want    Category
		wantErr bool
	}{
		{"-1", CategoryAnti, false},
		{"0", CategoryNeutral, false},
		{"1", CategoryPro, false},
		{"2", CategoryNews, false},
		{" 2 ", CategoryNews, false},
		{"3", 0, true},
		{"-2", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCategory(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseCategory(%q): expected error, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategory(%q): unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCategory_Labels(t *testing.T) {
	tests := []struct {
		cat    Category
		label  string
		binary string
	}{
		{CategoryAnti, "Anti", "Negative"},
		{CategoryNeutral, "Neutral", "Neutral"},
		{CategoryPro, "Pro", "Positive"},
		{CategoryNews, "News", "Positive"},
	}

	for _, tt := range tests {
		if got := tt.cat.Label(); got != tt.label {
			t.Errorf("Label(%d) = %q, want %q", tt.cat, got, tt.label)
		}
		if got := tt.cat.BinaryLabel(); got != tt.binary {
			t.Errorf("BinaryLabel(%d) = %q, want %q", tt.cat, got, tt.binary)
		}
	}
}

func TestCorpus_ByCategory(t *testing.T) {
	corpus := &Corpus{Records: []Record{
		{TweetID: "1", Text: "a", Category: CategoryPro},
		{TweetID: "2", Text: "b", Category: CategoryAnti},
		{TweetID: "3", Text: "c", Category: CategoryPro},
	}}

	pro := corpus.ByCategory(CategoryPro)
	if len(pro) != 2 {
		t.Fatalf("expected 2 Pro records, got %d", len(pro))
	}
	if pro[0].TweetID != "1" || pro[1].TweetID != "3" {
		t.Error("expected corpus order to be preserved")
	}

	if got := corpus.ByCategory(CategoryNews); got != nil {
		t.Errorf("expected nil for absent category, got %v", got)
	}
}
