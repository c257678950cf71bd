package common

// EntriesPath is the REST collection path for diary entries, shared by the
// HTTP server routes and the API client.
const EntriesPath = "/entries"

// EntryNotFoundFormat renders the message of a not-found failure for an id.
const EntryNotFoundFormat = "Diary entry with ID %s not found"
