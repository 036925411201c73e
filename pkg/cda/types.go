package cda

import (
	"time"
)

// Sys holds the system metadata attached to every delivery API resource.
type Sys struct {
	ID          string    `json:"id"                    yaml:"id"`
	Type        string    `json:"type"                  yaml:"type"`
	Revision    int       `json:"revision,omitempty"    yaml:"revision,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"   yaml:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"   yaml:"updatedAt,omitempty"`
	Locale      string    `json:"locale,omitempty"      yaml:"locale,omitempty"`
	ContentType *Link     `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	Space       *Link     `json:"space,omitempty"       yaml:"space,omitempty"`
}

// Link is a reference to another resource.
type Link struct {
	Sys LinkSys `json:"sys" yaml:"sys"`
}

// LinkSys identifies the target of a link.
type LinkSys struct {
	Type     string `json:"type"     yaml:"type"`
	LinkType string `json:"linkType" yaml:"linkType"`
	ID       string `json:"id"       yaml:"id"`
}

// Locale describes one locale configured for a space.
type Locale struct {
	Code    string `json:"code"              yaml:"code"`
	Name    string `json:"name"              yaml:"name"`
	Default bool   `json:"default,omitempty" yaml:"default,omitempty"`
}

// Space is the top-level container scoping all content for one API key.
type Space struct {
	Sys     Sys      `json:"sys"               yaml:"sys"`
	Name    string   `json:"name"              yaml:"name"`
	Locales []Locale `json:"locales,omitempty" yaml:"locales,omitempty"`
}

// ContentType is the schema definition for a category of entries.
type ContentType struct {
	Sys          Sys     `json:"sys"                    yaml:"sys"`
	Name         string  `json:"name"                   yaml:"name"`
	Description  string  `json:"description,omitempty"  yaml:"description,omitempty"`
	DisplayField string  `json:"displayField,omitempty" yaml:"displayField,omitempty"`
	Fields       []Field `json:"fields,omitempty"       yaml:"fields,omitempty"`
}

// Field is a single field definition within a content type.
type Field struct {
	ID        string `json:"id"                  yaml:"id"`
	Name      string `json:"name"                yaml:"name"`
	Type      string `json:"type"                yaml:"type"`
	Required  bool   `json:"required,omitempty"  yaml:"required,omitempty"`
	Localized bool   `json:"localized,omitempty" yaml:"localized,omitempty"`
	Disabled  bool   `json:"disabled,omitempty"  yaml:"disabled,omitempty"`
}

// Entry is a structured content item conforming to a content type. Field
// values are schema-dependent and left dynamic.
type Entry struct {
	Sys    Sys                    `json:"sys"    yaml:"sys"`
	Fields map[string]interface{} `json:"fields" yaml:"fields"`
}

// Asset is a binary/media resource with metadata.
type Asset struct {
	Sys    Sys         `json:"sys"    yaml:"sys"`
	Fields AssetFields `json:"fields" yaml:"fields"`
}

// AssetFields holds the localizable metadata of an asset.
type AssetFields struct {
	Title       string    `json:"title,omitempty"       yaml:"title,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	File        AssetFile `json:"file"                  yaml:"file"`
}

// AssetFile describes the underlying file of an asset.
type AssetFile struct {
	URL         string       `json:"url"               yaml:"url"`
	FileName    string       `json:"fileName"          yaml:"fileName"`
	ContentType string       `json:"contentType"       yaml:"contentType"`
	Details     *FileDetails `json:"details,omitempty" yaml:"details,omitempty"`
}

// FileDetails carries size and, for images, dimension information.
type FileDetails struct {
	Size  int64         `json:"size"            yaml:"size"`
	Image *ImageDetails `json:"image,omitempty" yaml:"image,omitempty"`
}

// ImageDetails holds pixel dimensions of an image asset.
type ImageDetails struct {
	Width  int `json:"width"  yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Collection is a paged array of decoded items plus pagination metadata.
// It is constructed by the decode pipeline and immutable afterwards.
type Collection[T any] struct {
	Total int `json:"total" yaml:"total"`
	Skip  int `json:"skip"  yaml:"skip"`
	Limit int `json:"limit" yaml:"limit"`
	Items []T `json:"items" yaml:"items"`
}

// EntryCollection is a paged collection of entries.
type EntryCollection = Collection[Entry]

// AssetCollection is a paged collection of assets.
type AssetCollection = Collection[Asset]

// ContentTypeCollection is a paged collection of content types.
type ContentTypeCollection = Collection[ContentType]
