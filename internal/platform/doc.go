// Package platform contains OS integration used by the browser shell:
// download directory discovery, file naming for saved downloads and
// revealing or opening saved files.
package platform
