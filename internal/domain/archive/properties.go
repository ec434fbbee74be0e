package archive

import (
	"bytes"
	"fmt"
)

// EncodeProjectProperties serializes the flat project metadata
// document. Key order is fixed; the header comment carries no timestamp
// so repeated synthesis yields identical bytes.
func EncodeProjectProperties(p *ResolvedProject) []byte {
	var buf bytes.Buffer
	buf.WriteString("#\n#Project properties\n")
	writeProperty(&buf, "sizing", "Responsive")
	writeProperty(&buf, "color.primary.dark", p.PrimaryDarkColor)
	writeProperty(&buf, "color.primary", p.PrimaryColor)
	writeProperty(&buf, "color.accent", p.AccentColor)
	writeProperty(&buf, "aname", p.AppName)
	writeProperty(&buf, "defaultfilescope", "App")
	writeProperty(&buf, "main", p.MainScreen)
	writeProperty(&buf, "source", "../src")
	writeProperty(&buf, "actionbar", "True")
	writeProperty(&buf, "useslocation", "False")
	writeProperty(&buf, "assets", "../assets")
	writeProperty(&buf, "build", "../build")
	writeProperty(&buf, "name", p.AppName)
	writeProperty(&buf, "showlistsasjson", "True")
	writeProperty(&buf, "theme", p.Theme)
	writeProperty(&buf, "versioncode", "1")
	writeProperty(&buf, "versionname", "1.0")
	return buf.Bytes()
}

func writeProperty(buf *bytes.Buffer, key, value string) {
	fmt.Fprintf(buf, "%s=%s\n", key, value)
}
