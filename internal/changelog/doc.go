// Package changelog supplies the changelog text that release notes are built from.
//
// A Provider turns a version identifier into Markdown changelog prose. Three
// providers are available:
//   - git: commits between release tags, grouped into features and fixes
//   - remote: a CHANGELOG.yaml fetched over HTTP
//   - file: a CHANGELOG.yaml read from disk
//
// The CHANGELOG.yaml schema follows Keep a Changelog categories and is
// validated on load.
package changelog
