package scaffold

const moduleManifestTemplate = `id: {{.ID}}
name: {{.Name}}
description: {{.Description}}
author: {{.Author}}
created: {{.Created}}
`

const packageManifestTemplate = `{
  "name": "{{.Name}}",
  "version": "0.1.0",
  "description": "{{.Description}}",
  "author": "{{.Author}}",
  "private": true
}
`

const readmeTemplate = `# {{.Name}}

{{.Description}}

## Layout

- ` + "`src/`" + ` — module sources
- ` + "`docs/`" + ` — documentation
{{- if .WithSpecs}}
- ` + "`specs/`" + ` — specification documents
{{- end}}
`

const requirementsTemplate = `# {{.Name}} — Requirements

> Author: {{.Author}}

## Goals

_TBD_

## Non-goals

_TBD_
`

const designTemplate = `# {{.Name}} — Design

> Author: {{.Author}}

## Overview

_TBD_

## Decisions

_TBD_
`
