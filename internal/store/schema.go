package store

const Schema = `
CREATE TABLE IF NOT EXISTS artists (
	artist_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	spotify_url TEXT NOT NULL,
	spotify_uri TEXT NOT NULL,
	image_large_uri TEXT NOT NULL,
	image_medium_uri TEXT NOT NULL,
	image_thumb_uri TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS albums (
	album_id TEXT PRIMARY KEY,
	artist_id TEXT NOT NULL,
	name TEXT NOT NULL,
	release_date TEXT NOT NULL,
	track_count INTEGER NOT NULL,
	spotify_url TEXT NOT NULL,
	spotify_uri TEXT NOT NULL,
	qr_code_url TEXT NOT NULL,
	album_type TEXT NOT NULL,
	image_large_uri TEXT NOT NULL,
	image_medium_uri TEXT NOT NULL,
	image_thumb_uri TEXT NOT NULL,
	FOREIGN KEY (artist_id) REFERENCES artists(artist_id)
);

CREATE TABLE IF NOT EXISTS songs (
	song_id TEXT PRIMARY KEY,
	artist_id TEXT NOT NULL,
	album_id TEXT,
	name TEXT NOT NULL,
	release_date TEXT NOT NULL,
	track_number INTEGER,
	duration_ms INTEGER NOT NULL,
	duration TEXT NOT NULL,
	spotify_url TEXT NOT NULL,
	spotify_uri TEXT NOT NULL,
	qr_code_url TEXT NOT NULL,
	is_single BOOLEAN NOT NULL,
	image_large_uri TEXT NOT NULL,
	image_medium_uri TEXT NOT NULL,
	image_thumb_uri TEXT NOT NULL,
	FOREIGN KEY (artist_id) REFERENCES artists(artist_id),
	FOREIGN KEY (album_id) REFERENCES albums(album_id)
);

CREATE INDEX IF NOT EXISTS idx_albums_artist_id ON albums(artist_id);
CREATE INDEX IF NOT EXISTS idx_songs_artist_id ON songs(artist_id);
CREATE INDEX IF NOT EXISTS idx_songs_album_id ON songs(album_id);
CREATE INDEX IF NOT EXISTS idx_songs_name ON songs(LOWER(name));
`

const DropSchema = `
DROP TABLE IF EXISTS songs;
DROP TABLE IF EXISTS albums;
DROP TABLE IF EXISTS artists;
`
