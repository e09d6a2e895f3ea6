package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewProfileRecord_ListsSerializeAsArrays(t *testing.T) {
	data, err := json.Marshal(NewProfileRecord("https://www.linkedin.com/in/x/"))
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	if strings.Contains(out, "null") {
		t.Errorf("bare record serialized a null list:\n%s", out)
	}
	for _, key := range []string{`"experience":[]`, `"education":[]`, `"certifications":[]`, `"skills":[]`, `"languages":[]`} {
		if !strings.Contains(out, key) {
			t.Errorf("output missing %s:\n%s", key, out)
		}
	}
	// Unresolved scalars stay out of the document entirely.
	if strings.Contains(out, `"name"`) || strings.Contains(out, `"headline"`) {
		t.Errorf("absent scalar fields should be omitted:\n%s", out)
	}
}

func TestNewPostRecord_ImagesSerializeAsArray(t *testing.T) {
	data, err := json.Marshal(NewPostRecord("https://www.linkedin.com/posts/x"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"images":[]`) {
		t.Errorf("bare record should serialize images as an empty array:\n%s", data)
	}
}

func TestEmpty(t *testing.T) {
	if !(Experience{}).Empty() || !(Education{}).Empty() || !(Certification{}).Empty() {
		t.Error("zero-value entries should be empty")
	}
	if (Experience{Location: "Berlin"}).Empty() {
		t.Error("an entry with any sub-field set is not empty")
	}
	if (Education{Duration: "2014 - 2018"}).Empty() {
		t.Error("an entry with any sub-field set is not empty")
	}
	if (Certification{Date: "Mar 2023"}).Empty() {
		t.Error("an entry with any sub-field set is not empty")
	}
}
