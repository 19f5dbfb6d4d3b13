package announce

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/wisehub-ai/wisehub/pkg/chatwork"
)

// RoomMatch is one candidate room with its similarity to the requested name.
type RoomMatch struct {
	RoomID     string
	Name       string
	Similarity float64
}

// MatchRooms ranks the tenant's rooms by normalized levenshtein similarity to
// the requested name, best first.
func MatchRooms(requested string, rooms []chatwork.Room) []RoomMatch {
	want := normalizeRoomName(requested)
	if want == "" {
		return nil
	}
	matches := make([]RoomMatch, 0, len(rooms))
	for _, r := range rooms {
		matches = append(matches, RoomMatch{
			RoomID:     r.RoomID,
			Name:       r.Name,
			Similarity: similarity(want, normalizeRoomName(r.Name)),
		})
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches
}

// similarity is 1 − normalized edit distance, with a substring floor so
// "研修" still matches "研修チャット" well.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	if strings.Contains(b, a) || strings.Contains(a, b) {
		shorter, longer := len([]rune(a)), len([]rune(b))
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		if ratio := float64(shorter) / float64(longer); ratio > 0.5 {
			return ratio
		}
	}
	dist := levenshtein.ComputeDistance(a, b)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	sim := 1 - float64(dist)/float64(maxLen)
	if sim < 0 {
		sim = 0
	}
	return sim
}

// normalizeRoomName lowers, trims and strips decorative chars so "【研修】"
// and "研修" compare equal.
func normalizeRoomName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	replacer := strings.NewReplacer(
		"【", "", "】", "", "[", "", "]", "",
		"（", "", "）", "", "(", "", ")", "",
		"　", "", " ", "", "・", "",
		"ルーム", "", "チャット", "", "room", "", "chat", "",
	)
	return replacer.Replace(name)
}
