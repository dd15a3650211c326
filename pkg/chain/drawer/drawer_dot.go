package drawer

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-cipherchain/pkg/chain/measure"
	"github.com/askiada/go-cipherchain/pkg/chain/model"
)

// DOTDrawer is a drawer that renders the chain graph in the Graphviz DOT language.
type DOTDrawer struct {
	graph   graph.Graph[string, string]
	parents map[string]string
}

// NewDOTDrawer creates a new DOT drawer.
func NewDOTDrawer() *DOTDrawer {
	return &DOTDrawer{
		graph:   graph.New(graph.StringHash, graph.Directed()),
		parents: make(map[string]string),
	}
}

const maxRGB = 240

// AddStep adds a step to the chain graph. Adding the same step twice is a no-op.
func (d *DOTDrawer) AddStep(step *model.StepInfo) error {
	colour, err := directionColour(step)
	if err != nil {
		return err
	}

	xlabel := string(step.Kind)
	if step.Direction != "" {
		xlabel += " " + step.Direction
	}

	attrs := []func(*graph.VertexProperties){
		graph.VertexAttribute("shape", "box"),
		graph.VertexAttribute("color", colour),
		graph.VertexAttribute("xlabel", xlabel),
	}
	if step.Config != "" {
		attrs = append(attrs, graph.VertexAttribute("tooltip", escapeDOT(step.Config)))
	}

	err = d.graph.AddVertex(step.Name, attrs...)
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return errors.Wrap(err, "unable to add vertex")
	}

	return nil
}

// AddLink adds a link between parent and children steps. Adding the same link twice is a no-op.
func (d *DOTDrawer) AddLink(parentName, childrenName string) error {
	err := d.graph.AddEdge(parentName, childrenName)
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childrenName)
	}

	d.parents[childrenName] = parentName

	return nil
}

// Draw writes the chain graph to wrt.
func (d *DOTDrawer) Draw(wrt io.Writer) error {
	err := dot(d.graph, wrt, GraphAttribute("rankdir", "LR"))
	if err != nil {
		return errors.Wrap(err, "unable to create dot graph")
	}

	return nil
}

// SetTotalTime sets the total time for the step.
func (d *DOTDrawer) SetTotalTime(stepName string, totalTime time.Duration) error {
	_, properties, err := d.graph.VertexWithProperties(stepName)
	if err != nil {
		return errors.Wrap(err, "unable to get vertex properties")
	}

	properties.Attributes["xlabel"] = "total: " + totalTime.String()

	return nil
}

// AddMeasure labels every measured step with its average duration, and colours the
// incoming edge from blue (cheapest step) to red (most expensive step).
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	metrics := msr.AllMetrics()

	names := make([]string, 0, len(metrics))
	for name, mt := range metrics {
		if mt.AVGDuration() == 0 {
			continue
		}

		names = append(names, name)
	}

	if len(names) == 0 {
		return nil
	}

	sort.Slice(names, func(i, j int) bool {
		return metrics[names[i]].AVGDuration() > metrics[names[j]].AVGDuration()
	})

	maxValue := metrics[names[0]].AVGDuration()
	minValue := metrics[names[len(names)-1]].AVGDuration()

	for _, name := range names {
		avg := metrics[name].AVGDuration()

		fraction := 1.0
		if maxValue > minValue {
			fraction = float64(avg-minValue) / float64(maxValue-minValue)
		}

		colour, err := heatColour(fraction)
		if err != nil {
			return err
		}

		err = d.updateMetric(name, avg, colour)
		if err != nil {
			return errors.Wrapf(err, "unable to update metric of %s", name)
		}
	}

	return nil
}

func (d *DOTDrawer) updateMetric(name string, avg time.Duration, colour string) error {
	_, properties, err := d.graph.VertexWithProperties(name)
	if err != nil {
		return errors.Wrap(err, "unable to get vertex properties")
	}

	properties.Attributes["xlabel"] += ", avg: " + avg.String()

	parent, ok := d.parents[name]
	if !ok {
		return nil
	}

	err = d.graph.UpdateEdge(parent, name,
		graph.EdgeAttribute("label", avg.String()),
		graph.EdgeAttribute("fontcolor", "blue"),
		graph.EdgeAttribute("color", colour),
	)
	if err != nil {
		return errors.Wrap(err, "unable to update edge")
	}

	return nil
}

func escapeDOT(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

func directionColour(step *model.StepInfo) (string, error) {
	switch step.Direction {
	case "encode":
		return rgbHex(0, 0, maxRGB)
	case "decode":
		return rgbHex(maxRGB, 0, 0)
	default:
		return rgbHex(128, 128, 128)
	}
}

func heatColour(fraction float64) (string, error) {
	red := maxRGB * fraction

	return rgbHex(uint8(red), 0, uint8(maxRGB-red))
}

func rgbHex(red, green, blue uint8) (string, error) {
	colour, err := colors.RGB(red, green, blue) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return colour.ToHEX().String(), nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot(gra graph.Graph[string, string], wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(gra, options...)
	if err != nil {
		return fmt.Errorf("failed to generate DOT description: %w", err)
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute is a functional option for the DOT output.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

// generateDOT walks the vertices in name order so the output is stable.
func generateDOT(gra graph.Graph[string, string], options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for _, vertex := range sortedKeys(adjacencyMap) {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)
		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))

		for k, v := range sourceProperties.Attributes {
			if k == "xlabel" {
				htmlAttributes["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, html.EscapeString(vertex), html.EscapeString(v))

				continue
			}

			sourceAttributes[k] = v
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		})

		adjacencies := adjacencyMap[vertex]
		for _, adjacency := range sortedKeys(adjacencies) {
			edge := adjacencies[adjacency]
			desc.Statements = append(desc.Statements, statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			})
		}
	}

	return desc, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
