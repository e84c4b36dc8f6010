// Package download keeps the list of downloads the user accepted during the
// session. Records are appended in acceptance order and are not persisted;
// the engine writes the bytes and reports completion back here.
package download
