package report

const tpl = `
<!DOCTYPE html>
<html>
 <head>
  <meta charset="UTF-8">
  <title>Maze Generation Report</title>
  <style>pre { line-height: 1.0; }</style>
 </head>
 <body>
  <h1>Maze Generation Report</h1>
  <h2>Task Information:</h2>
  {{ range .TaskInfoItems }}
  <b>{{ index . 0 }} : </b>{{ index . 1 }}<br>
  {{ end }}
  <h2>Execution Information:</h2>
  {{ range .ExecutionInfoItems }}
  <b>{{ index . 0 }} : </b>{{ index . 1 }}<br>
  {{ end }}
  <h2>Summary:</h2>
  <table>
   <tr>
    <th>Total</th>
    <th>Generated</th>
    <th>Verified</th>
    <th>Failed</th>
   </tr>
   <tr>
    <td>{{ .Summary.Total }}</td>
    <td>{{ .Summary.Generated }}</td>
    <td>{{ .Summary.Verified }}</td>
    <td>{{ .Summary.Failed }}</td>
   </tr>
  </table>
  <h2>Mazes:</h2>
  <table>
   <tr>
    {{ range .Mazes.Header }}
    <th>{{ . }}</th>
    {{ end }}
   </tr>
   {{ range .Mazes.Data }}
   <tr>
    {{ range . }}
    <td>{{ . }}</td>
    {{ end }}
   </tr>
   {{ end }}
  </table>
  <h2>Details:</h2>
  {{ range .Details }}
  <h3>{{ .Header }}</h3>
  {{ range .Labels }}
  <b>{{ index . 0 }} : </b>{{ index . 1 }}<br>
  {{ end }}
  {{ if .Text }}
  <pre>{{ .Text }}</pre>
  {{ end }}
  {{ end }}
 </body>
</html>`
