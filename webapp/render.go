package webapp

import (
	"html/template"
	"log"
	"net/http"
)

// Renderer produces a page from a view name and its data. Page templating is
// a collaborator of the relay, not part of it.
type Renderer interface {
	Render(w http.ResponseWriter, view string, data any)
}

var viewTemplates = map[string]string{
	"locations-list": `<!doctype html>
<html><head><title>{{.Title}}</title></head><body>
<h1>{{.Title}}</h1>
{{if .Message}}<p>{{.Message}}</p>{{end}}
<ul>
{{range .Locations}}<li><a href="/location/{{.ID}}">{{.Name}}</a> ({{.Distance}}), rated {{.Rating}}/5</li>
{{end}}</ul>
</body></html>`,
	"location-info": `<!doctype html>
<html><head><title>{{.Name}}</title></head><body>
<h1>{{.Name}}</h1>
<p>{{.Address}}</p>
<p>Rated {{.Rating}}/5 at {{.Coords.Latitude}},{{.Coords.Longitude}}</p>
<a href="/location/{{.ID}}/review/new">Add review</a>
<ul>
{{range .Reviews}}<li>{{.Author}} rated {{.Rating}}/5: {{.ReviewText}}</li>
{{end}}</ul>
</body></html>`,
	"location-review-form": `<!doctype html>
<html><head><title>{{.Title}}</title></head><body>
<h1>{{.Title}}</h1>
{{if eq .Error "val"}}<p>All fields required, please try again</p>{{end}}
<form method="POST" action="/location/{{.LocationID}}/review">
<input name="name" placeholder="Name">
<input name="rating" placeholder="Rating">
<textarea name="review"></textarea>
<button type="submit">Submit review</button>
</form>
</body></html>`,
	"generic-text": `<!doctype html>
<html><head><title>{{.Title}}</title></head><body>
<h1>{{.Title}}</h1>
<p>{{.Content}}</p>
</body></html>`,
}

type TemplateRenderer struct {
	templates map[string]*template.Template
}

func NewTemplateRenderer() *TemplateRenderer {
	templates := make(map[string]*template.Template, len(viewTemplates))
	for view, text := range viewTemplates {
		templates[view] = template.Must(template.New(view).Parse(text))
	}
	return &TemplateRenderer{templates: templates}
}

func (renderer *TemplateRenderer) Render(w http.ResponseWriter, view string, data any) {
	tmpl, ok := renderer.templates[view]
	if !ok {
		log.Printf("Unknown view %q", view)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := tmpl.Execute(w, data)
	if err != nil {
		log.Println("Error rendering view: ", err)
	}
}
