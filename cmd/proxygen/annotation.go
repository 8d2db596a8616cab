package main

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

const decoratableAnnotationTag = "@decoratable"

var (
	propertiesRegexp = regexp.MustCompile(`(\w+)=(?:"([^"]*)"|(\w+))`)
	identRegexp      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

type DecoratableAnnotation struct {
	logger      *zerolog.Logger
	description string
	properties  map[string]string
}

var knownProperties = []string{"proxy"}

// Proxy returns the name of the generated proxy type, if overridden.
func (a DecoratableAnnotation) Proxy() (proxy string, found bool) {
	proxy, found = a.properties["proxy"]
	if found && !identRegexp.MatchString(proxy) {
		a.logger.Warn().Msgf("Invalid proxy name: %q, using the default one", proxy)
		return "", false
	}
	return proxy, found
}

func (a DecoratableAnnotation) UnknownProperties() []string {
	var unknown []string
	for key := range a.properties {
		if !contains(knownProperties, key) {
			unknown = append(unknown, key)
		}
	}
	return unknown
}

// isDecoratable tells if a doc comment carries the annotation on a line of its own.
func isDecoratable(docText string) bool {
	for _, line := range strings.Split(docText, "\n") {
		line = strings.TrimSpace(line)
		if line == decoratableAnnotationTag || strings.HasPrefix(line, decoratableAnnotationTag+" ") {
			return true
		}
	}
	return false
}

func parseDecoratableAnnotation(logger *zerolog.Logger, docText string) DecoratableAnnotation {
	lines := strings.Split(docText, "\n")

	var descriptionLines []string
	var annotationLine string

	// separate @decoratable line from description
	for _, line := range lines {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, decoratableAnnotationTag) {
			annotationLine = line
		} else if line != "" && !strings.HasPrefix(line, "@") {
			descriptionLines = append(descriptionLines, line)
		}
	}

	annotation := DecoratableAnnotation{
		logger:      logger,
		description: strings.TrimSpace(strings.Join(descriptionLines, "\n")),
		properties:  parseProperties(annotationLine, decoratableAnnotationTag),
	}
	for _, unknown := range annotation.UnknownProperties() {
		logger.Warn().Msgf("Unknown property %q in %s annotation, ignoring it", unknown, decoratableAnnotationTag)
	}
	return annotation
}

func parseProperties(line string, tag string) map[string]string {
	properties := make(map[string]string)

	if line == "" {
		return properties
	}

	content := strings.TrimPrefix(line, tag)
	content = strings.TrimSpace(content)

	if content == "" {
		return properties
	}

	// key=value or key="value"
	matches := propertiesRegexp.FindAllStringSubmatch(content, -1)

	for _, match := range matches {
		key := match[1]
		// match[2] is quoted value, match[3] is unquoted value
		value := match[2]
		if value == "" {
			value = match[3]
		}
		properties[key] = value
	}

	return properties
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
