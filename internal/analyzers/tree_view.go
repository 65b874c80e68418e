package analyzers

import (
	"sort"
	"strings"

	"github.com/KaramelBytes/dataspot-cli/models"
)

const defaultTreeTop = 5

// Tree renders the filtered concentration patterns back into a hierarchy
// suitable for visualization, keeping only the strongest branches.
type Tree struct {
	Base
}

// NewTree returns a Tree sharing the given preprocessing context.
func NewTree(prep map[string]models.Preprocessor) *Tree {
	return &Tree{Base: Base{Preprocessors: prep}}
}

// Execute builds the rendered tree. Node identifiers are assigned in
// pre-order over the final rendering, root first, so equal inputs always
// produce equal trees.
func (t *Tree) Execute(input models.TreeInput, opts models.TreeOptions) (*models.TreeOutput, error) {
	if err := t.ValidateRecords(input.Data); err != nil {
		return nil, err
	}

	top := opts.Top
	if top <= 0 {
		top = defaultTreeTop
	}

	findOpts := treeFindOptions(opts)
	if err := ValidateOptions(findOpts); err != nil {
		return nil, err
	}

	filtered := t.FilterByQuery(input.Data, input.Query)
	if len(input.Fields) == 0 || len(filtered) == 0 {
		return &models.TreeOutput{
			Name:       "root",
			Children:   []models.TreeNode{},
			Value:      0,
			Percentage: 0,
			Node:       0,
			Top:        top,
			Statistics: models.TreeStatistics{
				TotalRecords:    len(input.Data),
				FilteredRecords: len(filtered),
				FieldsAnalyzed:  len(input.Fields),
			},
			FieldsAnalyzed: input.Fields,
		}, nil
	}

	tree := t.BuildTree(filtered, input.Fields)
	patterns := ExtractPatterns(tree, len(filtered))
	kept, err := ApplyFilters(patterns, findOpts)
	if err != nil {
		return nil, err
	}

	root := buildViewTrie(kept)
	nextID := 0
	children := renderChildren(root, top, &nextID)

	return &models.TreeOutput{
		Name:       "root",
		Children:   children,
		Value:      len(filtered),
		Percentage: 100.0,
		Node:       0,
		Top:        top,
		Statistics: models.TreeStatistics{
			TotalRecords:    len(input.Data),
			FilteredRecords: len(filtered),
			PatternsFound:   len(kept),
			FieldsAnalyzed:  len(input.Fields),
		},
		FieldsAnalyzed: input.Fields,
	}, nil
}

// viewNode is an intermediate trie rebuilt from pattern paths. A segment can
// exist without its own pattern when a filter removed the parent but kept a
// deeper path; such nodes render with zero count.
type viewNode struct {
	value      int
	percentage float64
	children   map[string]*viewNode
	order      []string
}

func buildViewTrie(patterns []models.Pattern) *viewNode {
	root := &viewNode{children: make(map[string]*viewNode)}
	for _, p := range patterns {
		node := root
		for _, segment := range strings.Split(p.Path, PathSeparator) {
			child, ok := node.children[segment]
			if !ok {
				child = &viewNode{children: make(map[string]*viewNode)}
				node.children[segment] = child
				node.order = append(node.order, segment)
			}
			node = child
		}
		node.value = p.Count
		node.percentage = p.Percentage
	}
	return root
}

// renderChildren emits a level of the trie: children ordered by percentage
// descending (stable on insertion order), truncated to top, ids assigned
// pre-order via the shared counter.
func renderChildren(node *viewNode, top int, nextID *int) []models.TreeNode {
	names := append([]string(nil), node.order...)
	sort.SliceStable(names, func(i, j int) bool {
		return node.children[names[i]].percentage > node.children[names[j]].percentage
	})
	if len(names) > top {
		names = names[:top]
	}

	out := make([]models.TreeNode, 0, len(names))
	for _, name := range names {
		child := node.children[name]
		*nextID++
		rendered := models.TreeNode{
			Name:       name,
			Value:      child.value,
			Percentage: child.percentage,
			Node:       *nextID,
		}
		rendered.Children = renderChildren(child, top, nextID)
		out = append(out, rendered)
	}
	return out
}

func treeFindOptions(opts models.TreeOptions) models.FindOptions {
	return models.FindOptions{
		MinPercentage: opts.MinPercentage,
		MaxPercentage: opts.MaxPercentage,
		MinCount:      opts.MinValue,
		MaxCount:      opts.MaxValue,
		MinDepth:      opts.MinDepth,
		MaxDepth:      opts.MaxDepth,
		Contains:      opts.Contains,
		Exclude:       opts.Exclude,
		Regex:         opts.Regex,
	}
}
