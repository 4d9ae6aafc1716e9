package store

// NextID returns the smallest positive integer not present in used.
func NextID(used map[int]struct{}) int {
	id := 1
	for {
		if _, taken := used[id]; !taken {
			return id
		}
		id++
	}
}
