package render

import "hash/fnv"

// palette holds the badge styles a tag can map to. The choice is cosmetic;
// what matters is that the same tag always gets the same entry.
var palette = []string{
	"bg-gray-100 text-gray-800",
	"bg-amber-100 text-amber-800",
	"bg-purple-100 text-purple-800",
	"bg-teal-100 text-teal-800",
	"bg-pink-100 text-pink-800",
	"bg-indigo-100 text-indigo-800",
}

// namedTagColors pins the tags the catalog has always used to their
// historical colors.
var namedTagColors = map[string]string{
	"urgent":        "bg-red-100 text-red-800",
	"safety":        "bg-blue-100 text-blue-800",
	"public-health": "bg-green-100 text-green-800",
}

// TagColor returns the badge classes for a tag: a pinned color for known
// tags, otherwise an FNV-1a hash into the palette.
func TagColor(tag string) string {
	if color, ok := namedTagColors[tag]; ok {
		return color
	}
	h := fnv.New32a()
	h.Write([]byte(tag))
	return palette[h.Sum32()%uint32(len(palette))]
}
