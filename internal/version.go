package internal

// Version is the current cedict2json release
const Version = "1.0.0"
