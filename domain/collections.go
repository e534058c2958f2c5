package domain

const (
	CollectionPlaylist = "playlists"
)
const (
	CollectionUser = "users"
)
