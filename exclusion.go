package ulmark

import (
	"regexp"
	"sort"

	"pkt.systems/ulmark/internal/units"
)

// RegionKind identifies the construct an exclusion region covers.
type RegionKind uint8

const (
	RegionFencedCode RegionKind = iota
	RegionInlineCode
	RegionDisplayMath
	RegionInlineMath
	RegionWikiLink
	RegionLink
	RegionURL
	RegionFrontMatter
)

var regionKindNames = [...]string{
	RegionFencedCode:  "fenced-code",
	RegionInlineCode:  "inline-code",
	RegionDisplayMath: "display-math",
	RegionInlineMath:  "inline-math",
	RegionWikiLink:    "wiki-link",
	RegionLink:        "link",
	RegionURL:         "url",
	RegionFrontMatter: "front-matter",
}

func (k RegionKind) String() string {
	if int(k) < len(regionKindNames) {
		return regionKindNames[k]
	}
	return "unknown"
}

// ExclusionRegion is a half-open range of UTF-16 offsets into a block of text
// whose underscores never act as marks.
type ExclusionRegion struct {
	From int
	To   int
	Kind RegionKind
}

// Contains reports whether offset lies inside the region.
func (r ExclusionRegion) Contains(offset int) bool {
	return offset >= r.From && offset < r.To
}

type exclusionPattern struct {
	kind RegionKind
	re   *regexp.Regexp
}

// Every pattern runs over the whole text on its own; matches may overlap.
// A backtick fence's info string cannot contain a backtick, so ```x``` at
// the start of a line is inline code rather than an opening fence.
var exclusionPatterns = []exclusionPattern{
	{RegionFencedCode, regexp.MustCompile("(?ms)^[ \t]*```[^`\n]*(?:\n.*?)?(?:\n[ \t]*```[ \t]*$|\\z)")},
	{RegionFencedCode, regexp.MustCompile("(?ms)^[ \t]*~~~.*?(?:\n[ \t]*~~~[ \t]*$|\\z)")},
	{RegionInlineCode, regexp.MustCompile("``[^\n]+?``|`[^`\n]+`")},
	{RegionDisplayMath, regexp.MustCompile(`(?s)\$\$.+?\$\$`)},
	{RegionInlineMath, regexp.MustCompile(`\$[^$\n]+?\$`)},
	{RegionWikiLink, regexp.MustCompile(`!?\[\[[^\]\n]+\]\]`)},
	{RegionLink, regexp.MustCompile(`!?\[[^\]\n]*\]\([^)\n]*\)`)},
	{RegionURL, regexp.MustCompile("(?:https?|ftp|file)://[^\\s<>\"'`()\\[\\]]+")},
}

// FindExclusions returns the exclusion regions of text ordered by From, then To.
func FindExclusions(text string) []ExclusionRegion {
	if text == "" {
		return nil
	}
	offsets := units.Offsets(text)
	var regions []ExclusionRegion
	if fm, ok := frontMatterRegion(text); ok {
		regions = append(regions, ExclusionRegion{From: offsets[fm[0]], To: offsets[fm[1]], Kind: RegionFrontMatter})
	}
	for _, p := range exclusionPatterns {
		for _, m := range p.re.FindAllStringIndex(text, -1) {
			if m[0] == m[1] {
				continue
			}
			regions = append(regions, ExclusionRegion{From: offsets[m[0]], To: offsets[m[1]], Kind: p.kind})
		}
	}
	sort.SliceStable(regions, func(i, j int) bool {
		if regions[i].From != regions[j].From {
			return regions[i].From < regions[j].From
		}
		return regions[i].To < regions[j].To
	})
	return regions
}

const blankUnit = ' '

// Blank returns the UTF-16 units of line with every unit covered by a region
// replaced by a blank. offset is the position of the line's first unit within
// the text the regions were computed over. The result has the same length as
// the line so columns stay aligned.
func Blank(line string, offset int, regions []ExclusionRegion) []uint16 {
	u := units.Encode(line)
	for _, r := range regions {
		lo := r.From - offset
		hi := r.To - offset
		if hi <= 0 || lo >= len(u) {
			continue
		}
		lo = units.Clamp(lo, 0, len(u))
		hi = units.Clamp(hi, lo, len(u))
		for i := lo; i < hi; i++ {
			u[i] = blankUnit
		}
	}
	return u
}
