package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/parsekit/parsekit/parse"
	"github.com/parsekit/parsekit/parse/combinator"
	"github.com/parsekit/parsekit/parse/slice"
)

const (
	actionReferenceLocalPrefixConstant        = "./"
	actionReferencePathSeparatorConstant      = byte('/')
	actionReferenceRefSeparatorConstant       = byte('@')
	actionReferenceEmptyMessageConstant       = "action reference must be non-empty"
	actionReferenceParseErrorTemplateConstant = "malformed action reference %q: %w"
	actionReferenceTrailingTemplateConstant   = "unexpected trailing characters at offset %d"
)

// ActionReference identifies an external reusable action invoked by a step:
// either a repository-hosted action (owner/repository[/path]@ref) or an
// action stored inside the workflow's own repository (./path).
type ActionReference struct {
	Owner      string
	Repository string
	Path       string
	Ref        string
	Local      bool
}

type actionReferenceParser = parse.Parser[struct{}, slice.BytePos, ActionReference]

// ParseActionReference parses a step's uses value.
func ParseActionReference(reference string) (ActionReference, error) {
	if len(strings.TrimSpace(reference)) == 0 {
		return ActionReference{}, errors.New(actionReferenceEmptyMessageConstant)
	}

	driver := parse.NewDriver()
	startPosition := slice.New([]byte(reference))

	progress := combinator.NewAlternate[struct{}, slice.BytePos, ActionReference](driver, startPosition).
		One(localReferenceParser()).
		One(remoteReferenceParser()).
		Finish()

	parsedPosition, parsedReference, parseError := progress.Finish()
	if parseError != nil {
		return ActionReference{}, fmt.Errorf(actionReferenceParseErrorTemplateConstant, reference, parseError)
	}
	if len(parsedPosition.Rest) != 0 {
		trailingError := fmt.Errorf(actionReferenceTrailingTemplateConstant, parsedPosition.Position())
		return ActionReference{}, fmt.Errorf(actionReferenceParseErrorTemplateConstant, reference, trailingError)
	}

	return parsedReference, nil
}

func localReferenceParser() actionReferenceParser {
	return func(driver *parse.Driver[struct{}], startPosition slice.BytePos) parse.Progress[slice.BytePos, ActionReference] {
		prefixProgress := slice.Tag[struct{}]([]byte(actionReferenceLocalPrefixConstant))(driver, startPosition)
		if prefixProgress.Err != nil {
			return parse.Failure[slice.BytePos, ActionReference](startPosition, prefixProgress.Err)
		}

		pathProgress := slice.TakeWhile1[struct{}](anyByte)(driver, prefixProgress.Pos)
		if pathProgress.Err != nil {
			return parse.Failure[slice.BytePos, ActionReference](pathProgress.Pos, pathProgress.Err)
		}

		return parse.Success(pathProgress.Pos, ActionReference{
			Local: true,
			Path:  string(pathProgress.Value),
		})
	}
}

func remoteReferenceParser() actionReferenceParser {
	return func(driver *parse.Driver[struct{}], startPosition slice.BytePos) parse.Progress[slice.BytePos, ActionReference] {
		ownerProgress := referenceSegmentParser()(driver, startPosition)
		if ownerProgress.Err != nil {
			return parse.Failure[slice.BytePos, ActionReference](startPosition, ownerProgress.Err)
		}

		separatorProgress := slice.Tag[struct{}]([]byte{actionReferencePathSeparatorConstant})(driver, ownerProgress.Pos)
		if separatorProgress.Err != nil {
			return parse.Failure[slice.BytePos, ActionReference](separatorProgress.Pos, separatorProgress.Err)
		}

		repositoryProgress := referenceSegmentParser()(driver, separatorProgress.Pos)
		if repositoryProgress.Err != nil {
			return parse.Failure[slice.BytePos, ActionReference](repositoryProgress.Pos, repositoryProgress.Err)
		}

		subPathProgress := combinator.ZeroOrMore(subPathSegmentParser())(driver, repositoryProgress.Pos)
		if subPathProgress.Err != nil {
			return parse.Failure[slice.BytePos, ActionReference](subPathProgress.Pos, subPathProgress.Err)
		}

		refSeparatorProgress := slice.Tag[struct{}]([]byte{actionReferenceRefSeparatorConstant})(driver, subPathProgress.Pos)
		if refSeparatorProgress.Err != nil {
			return parse.Failure[slice.BytePos, ActionReference](refSeparatorProgress.Pos, refSeparatorProgress.Err)
		}

		refProgress := slice.TakeWhile1[struct{}](anyByte)(driver, refSeparatorProgress.Pos)
		if refProgress.Err != nil {
			return parse.Failure[slice.BytePos, ActionReference](refProgress.Pos, refProgress.Err)
		}

		return parse.Success(refProgress.Pos, ActionReference{
			Owner:      string(ownerProgress.Value),
			Repository: string(repositoryProgress.Value),
			Path:       strings.Join(subPathProgress.Value, string(actionReferencePathSeparatorConstant)),
			Ref:        string(refProgress.Value),
		})
	}
}

func referenceSegmentParser() parse.Parser[struct{}, slice.BytePos, []byte] {
	return slice.TakeWhile1[struct{}](func(character byte) bool {
		return character != actionReferencePathSeparatorConstant && character != actionReferenceRefSeparatorConstant
	})
}

func subPathSegmentParser() parse.Parser[struct{}, slice.BytePos, string] {
	return func(driver *parse.Driver[struct{}], startPosition slice.BytePos) parse.Progress[slice.BytePos, string] {
		separatorProgress := slice.Tag[struct{}]([]byte{actionReferencePathSeparatorConstant})(driver, startPosition)
		if separatorProgress.Err != nil {
			return parse.Failure[slice.BytePos, string](startPosition, separatorProgress.Err)
		}
		segmentProgress := referenceSegmentParser()(driver, separatorProgress.Pos)
		if segmentProgress.Err != nil {
			return parse.Failure[slice.BytePos, string](startPosition, segmentProgress.Err)
		}
		return parse.Success(segmentProgress.Pos, string(segmentProgress.Value))
	}
}

func anyByte(byte) bool {
	return true
}
