// Package branding holds the product identity shown in page metadata.
package branding

// AppName is the public product name and the landing page title.
const AppName = "Developer DAO School of Code"

// Description is the landing page meta description.
const Description = "Developer DAO's school of code"

// FaviconPath is the site icon reference used in every page head.
const FaviconPath = "/favicon.ico"
