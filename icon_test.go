package svgicon

import (
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iconRed = `<svg class="dataset-icon icon-red" viewBox="0 0 40 40">
    <ellipse cx="20" cy="8" rx="18" ry="6"/>
    <path d="M2 8 Q20 12 38 8"/>
    <ellipse cx="20" cy="20" rx="18" ry="6"/>
    <path d="M2 20 Q20 24 38 20"/>
    <ellipse cx="20" cy="32" rx="18" ry="6"/>
    <path d="M2 32 Q20 36 38 32"/>
</svg>`

func TestDatasetIcon(t *testing.T) {
	got := DatasetIcon("icon-red")

	assert.Equal(t, iconRed, got)
	assert.True(t, strings.HasPrefix(got, `<svg class="dataset-icon icon-red" viewBox="0 0 40 40">`))
	assert.Contains(t, got, `<ellipse cx="20" cy="8" rx="18" ry="6"/>`)
}

func TestDatasetIcon_EmptyClassKeepsTrailingSpace(t *testing.T) {
	got := DatasetIcon("")

	assert.True(t, strings.HasPrefix(got, `<svg class="dataset-icon " viewBox="0 0 40 40">`), got)
}

func TestDatasetIcon_ClassIsInsertedVerbatim(t *testing.T) {
	classes := []string{"", "icon-red", "a b c", `"><script>alert(1)</script>`, "ünïcødé", "  padded  "}
	for _, class := range classes {
		t.Run(class, func(t *testing.T) {
			got := DatasetIcon(class)
			assert.True(t, strings.HasPrefix(got, `<svg class="dataset-icon `+class+`" viewBox="0 0 40 40">`))
		})
	}
}

var tagPattern = regexp.MustCompile(`<(ellipse|path)\b`)

func TestDatasetIcon_ElementOrder(t *testing.T) {
	for _, class := range []string{"", "icon-red", "x y"} {
		var tags []string
		for _, m := range tagPattern.FindAllStringSubmatch(DatasetIcon(class), -1) {
			tags = append(tags, m[1])
		}
		assert.Equal(t, []string{"ellipse", "path", "ellipse", "path", "ellipse", "path"}, tags)
	}
}

func TestDatasetIcon_Deterministic(t *testing.T) {
	want := DatasetIcon("icon-blue")
	for i := 0; i < 1000; i++ {
		require.Equal(t, want, DatasetIcon("icon-blue"))
	}
}

func TestDatasetIcon_Concurrent(t *testing.T) {
	want := DatasetIcon("icon-green")

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = DatasetIcon("icon-green")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
