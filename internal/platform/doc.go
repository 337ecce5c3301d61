// Package platform provides the filesystem primitives the generator needs:
// recursive directory creation and joining output paths the way they are
// echoed to the user. Both slash and backslash are treated as separators.
package platform
