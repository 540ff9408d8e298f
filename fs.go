//go:build !js

package harlog

const hasFilesystem = true
