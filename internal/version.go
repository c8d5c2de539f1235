package internal

// Version is the derdiedas release version.
const Version = "0.3.1"
