package shell

import (
	"embed"
	"path"
)

//go:embed helptext/*.txt
var helptext embed.FS

func usage(mode string) string {
	dat, err := helptext.ReadFile(path.Join("helptext", "usage-"+mode+".txt"))
	if err != nil {
		return "Error loading helptext: " + err.Error()
	}
	return string(dat)
}

func usageTopic(topic string) string {
	dat, err := helptext.ReadFile(path.Join("helptext", path.Base(topic)+".txt"))
	if err != nil {
		return "There is no help text for the topic " + topic
	}
	return string(dat)
}
