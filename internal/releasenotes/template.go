package releasenotes

import "text/template"

// documentTemplate is the release notes body. The install section is fixed
// and must stay byte-for-byte stable across releases.
const documentTemplate = `## Changes

{{.Changelog}}

## Install

[Install](https://dprint.dev/install/) and [setup](https://dprint.dev/setup/) dprint.

Then in your project's directory with a dprint.json file, run:

` + "```" + `shellsession
dprint config add jupyter
` + "```" + `

Then add some additional formatting plugins to format the code blocks with. For example:

` + "```" + `shellsession
dprint config add typescript
dprint config add markdown
dprint config add ruff
` + "```" + `
`

var document = template.Must(template.New("release-notes").Parse(documentTemplate))

// templateData is the value the document template is executed with.
type templateData struct {
	Changelog string
}
