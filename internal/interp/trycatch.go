package interp

import "github.com/g3ntleman/go-clj/internal/value"

// catchClause is one (catch Type binding body…) handler.
type catchClause struct {
	typeName string
	binding  *value.Symbol
	body     *value.List
}

// evalTry implements (try body… (catch Type e handler…)* (finally …)?).
// Catch clauses match by exception type name; finally runs on both the
// success and failure paths.
func (i *Interp) evalTry(l *value.List, env *Environment) (value.Value, error) {
	var bodyForms []value.Value
	var catches []catchClause
	var finallyBody *value.List

	for c := l.Rest; c != nil; c = c.Rest {
		form := c.First
		if form.Kind() == value.KindList {
			head := form.List().First
			if head.Kind() == value.KindSymbol {
				switch head.Sym() {
				case symCatch:
					clause, err := i.parseCatch(form.List())
					if err != nil {
						return value.Nil, err
					}
					catches = append(catches, clause)
					continue
				case symFinally:
					if finallyBody != nil {
						return value.Nil, i.badForm("try allows a single finally clause")
					}
					finallyBody = form.List().Rest
					continue
				}
			}
		}
		if len(catches) > 0 || finallyBody != nil {
			return value.Nil, i.badForm("try body forms must precede catch and finally clauses")
		}
		bodyForms = append(bodyForms, form)
	}

	result, err := i.evalBody(bodyForms, env)
	if err != nil {
		if exc, ok := value.AsException(err); ok {
			if clause, matched := matchCatch(catches, exc); matched {
				child := NewEnclosedEnvironment(env)
				child.Define(clause.binding.Name, value.ExceptionValue(exc))
				result, err = i.evalBodyList(clause.body, child)
			}
		}
	}

	if finallyBody != nil {
		if _, ferr := i.evalBodyList(finallyBody, env); ferr != nil {
			// A throw during finally replaces the pending outcome.
			return value.Nil, ferr
		}
	}

	if err != nil {
		return value.Nil, err
	}
	return result, nil
}

func (i *Interp) parseCatch(l *value.List) (catchClause, error) {
	args := l.Rest
	if args == nil || args.First.Kind() != value.KindSymbol ||
		args.Rest == nil || args.Rest.First.Kind() != value.KindSymbol {
		return catchClause{}, i.badForm("catch expects a type name and a binding symbol")
	}
	return catchClause{
		typeName: args.First.Sym().Name,
		binding:  args.Rest.First.Sym(),
		body:     args.Rest.Rest,
	}, nil
}

// matchCatch returns the first clause whose type name equals the
// exception's type tag.
func matchCatch(catches []catchClause, exc *value.Exception) (catchClause, bool) {
	for _, clause := range catches {
		if clause.typeName == exc.TypeName {
			return clause, true
		}
	}
	return catchClause{}, false
}
