// Package scaffold writes the declaration and definition skeletons for a class
// from embedded templates. It materializes the target directory, renders the
// header and then the source file, and echoes each rendered file to a writer
// as it goes. Existing files are overwritten.
package scaffold
