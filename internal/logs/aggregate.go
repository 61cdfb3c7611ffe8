package logs

// RecentTags collects the distinct tag names across the given views, which
// must be ordered newest first (as List returns them), and caps the result at
// limit. Used for UI suggestion/display only.
func RecentTags(views []LogView, limit int) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, v := range views {
		for _, tag := range v.Tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}
