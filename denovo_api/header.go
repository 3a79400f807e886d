package denovo_api

import (
	"regexp"
	"strings"
)

var headerLineRegex = regexp.MustCompile(`^##(?P<headerType>[^=]*)=<(?P<content>.*)>$`)

// Create a new header struct
func newHeader() *Header {
	return &Header{
		Info: map[string]HeaderLineIdNumberTypeDescription{},
	}
}

// Parse a meta-information line and add its INFO declaration to the Header struct
func (header *Header) parse(line string) {
	line = strings.TrimRight(line, "\r\n")
	matches := headerLineRegex.FindStringSubmatch(line)
	if len(matches) == 0 || matches[1] != "INFO" {
		return
	}

	contentMap := convertLineToMap(matches[2])
	headerLine := HeaderLineIdNumberTypeDescription{
		Id:          contentMap["id"],
		Number:      contentMap["number"],
		Type:        contentMap["type"],
		Description: contentMap["description"],
	}

	header.Info[headerLine.Id] = headerLine
}

// True when the INFO field is declared as a Flag
func (header *Header) isFlag(field string) bool {
	return header.Info[field].Type == "Flag"
}

// convertLineToMap converts the header line contents to a map suitable to transform to a struct
func convertLineToMap(line string) map[string]string {
	data := map[string]string{}
	word := ""
	key := ""
	quote := ""
	for _, letter := range strings.Split(line, "") {
		if letter == "=" && quote == "" && key == "" {
			key = strings.ToLower(word)
			word = ""
			continue
		} else if letter == "," && quote == "" {
			data[key] = word
			key = ""
			word = ""
			continue
		}

		word += letter

		if letter == quote {
			quote = ""
		} else if quote == "" && (letter == "\"" || letter == "'") {
			quote = letter
		}
	}
	data[key] = word

	return data
}
