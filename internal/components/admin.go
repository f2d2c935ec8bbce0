package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"eaglesounds.in/internal/models"
)

func AdminPage() g.Node {
	return Layout(
		PageConfig{Title: "Admin - Eagle Sounds", Path: "/admin"},
		Section(
			Class("page-header"),
			H1(g.Text("Site Admin")),
		),
		Ul(
			Class("admin-links"),
			Li(A(Href("/admin/image-manager"), g.Text("Image Manager"))),
			Li(A(Href("/metrics"), g.Text("Metrics"))),
		),
	)
}

// ImageManagerPage lists the images the site expects, grouped by category,
// each with an upload form targeting its fixed path and filename.
func ImageManagerPage(categories []string, groups map[string][]models.ImageRequirement, selected, query string) g.Node {
	content := []g.Node{
		Section(
			Class("page-header"),
			H1(g.Text("Image Manager")),
			P(g.Text("Upload a file to replace the image at its target path. The file is renamed automatically.")),
		),
		imageFilter(categories, selected, query),
	}

	shown := 0
	for _, c := range categories {
		images := groups[c]
		if len(images) == 0 {
			continue
		}
		shown++
		content = append(content, Section(
			Class("image-category"),
			H2(g.Text(c)),
			Div(
				Class("image-grid"),
				g.Group(g.Map(images, imageCard)),
			),
		))
	}
	if shown == 0 {
		content = append(content, P(Class("empty"), g.Text("No images match the filter.")))
	}

	return Layout(
		PageConfig{Title: "Image Manager - Eagle Sounds", Path: "/admin/image-manager"},
		content...,
	)
}

func imageFilter(categories []string, selected, query string) g.Node {
	return FormEl(
		Class("image-filter"),
		Method("get"),
		Select(
			Name("category"),
			Option(Value("all"), g.Text("All categories"), g.If(selected == "" || selected == "all", Selected())),
			g.Group(g.Map(categories, func(c string) g.Node {
				return Option(Value(c), g.Text(c), g.If(c == selected, Selected()))
			})),
		),
		Input(Type("search"), Name("q"), Value(query), Placeholder("Search images")),
		Button(Type("submit"), g.Text("Filter")),
	)
}

func imageCard(img models.ImageRequirement) g.Node {
	target := strings.TrimSuffix(img.TargetPath, "/") + "/" + img.TargetFilename

	return Div(
		Class("image-card"),
		ID(img.ID),
		Img(Src(target), Alt(img.Purpose), g.Attr("loading", "lazy")),
		H3(g.Text(img.TargetFilename)),
		P(g.Text(img.Purpose)),
		P(Class("dimensions"), g.Text(img.Dimensions)),
		g.If(img.AspectRatio != "", P(Class("aspect"), g.Text(img.AspectRatio))),
		FormEl(
			Class("upload-form"),
			Action("/api/upload-image"),
			Method("post"),
			EncType("multipart/form-data"),
			Input(Type("file"), Name("imageFile"), Accept("image/*"), Required()),
			Input(Type("hidden"), Name("targetFilename"), Value(img.TargetFilename)),
			Input(Type("hidden"), Name("targetPath"), Value(img.TargetPath)),
			Button(Type("submit"), g.Text("Upload")),
		),
	)
}
