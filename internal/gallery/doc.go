// Package gallery scans a photos tree and assembles the site model.
//
// Each immediate subdirectory of the photos root becomes a section. Files
// inside a section are classified by extension into images and videos,
// videos are paired with a same-named poster image when one exists, and an
// optional links file contributes external YouTube/Vimeo embeds. Sections
// without any classifiable media are dropped from the model.
//
// The whole pipeline is a pure function of the filesystem snapshot plus the
// cache-busting version token, so two runs over identical trees with the
// same token produce identical models.
package gallery
