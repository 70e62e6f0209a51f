package render

// Examples are starter templates written by `namecase init`, keyed by file
// name.
var Examples = map[string]string{
	"__snakeCase__.service.ts.tmpl": exampleService,
	"__snakeCase__.go.tmpl":         exampleModel,
}

const exampleService = `import { Injectable } from '@angular/core';
import { HttpClient } from '@angular/common/http';
import { {{.Names.Model}} } from './{{.Names.SnakeCase}}.model';

const BASE_URL = '/api/{{.Names.SnakeCases}}';

@Injectable({ providedIn: 'root' })
export class {{.Names.Models}}Service {
  constructor(private http: HttpClient) {}

  all() {
    return this.http.get<{{.Names.Model}}[]>(BASE_URL);
  }

  find(id: string) {
    return this.http.get<{{.Names.Model}}>(` + "`${BASE_URL}/${id}`" + `);
  }

  create({{.Names.ModelParam}}) {
    return this.http.post(BASE_URL, {{.Names.Obj}});
  }

  update({{.Names.ModelParam}}) {
    return this.http.patch(` + "`${BASE_URL}/${" + `{{.Names.Obj}}.id}` + "`" + `, {{.Names.Obj}});
  }

  upsertAll({{.Names.ModelsParam}}) {
    return Promise.all({{.Names.Objs}}.map(({{.Names.Obj}}) => this.update({{.Names.Obj}})));
  }
}
`

const exampleModel = `package {{snakeCaselize .Config.Name}}

{{with .Schema.Description -}}
// {{$.Names.Model}}: {{.}}
{{- else -}}
// {{.Names.Model}} is a {{placeholderize .Schema.Model}}.
{{- end}}
type {{.Names.Model}} struct {
	ID string ` + "`json:\"id\"`" + `
{{- range .Schema.Props}}
	{{labelize .name}} {{or .type "string"}} ` + "`json:\"{{camelize .name}}\"`" + `
{{- end}}
}
`
