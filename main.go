package main

import (
	"fmt"

	"browser/flatdom"
	"browser/flatdom/export"
)

func main() {
	// The command sequence a conforming tree constructor issues for
	// "<!DOCTYPE html><html><body>Hi</body></html>".
	sink := flatdom.NewFlatSink()
	sink.AppendDoctypeToDocument("html", "", "")

	html := sink.CreateElement(flatdom.QualifiedName{Local: "html"}, nil, flatdom.ElementFlags{})
	sink.Append(sink.Document(), flatdom.AppendNode(html))

	body := sink.CreateElement(flatdom.QualifiedName{Local: "body"}, nil, flatdom.ElementFlags{})
	sink.Append(html, flatdom.AppendNode(body))
	sink.Append(body, flatdom.AppendText("Hi"))

	out, err := export.Marshal(sink.Finish())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(out))
}
