package disco

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>{{.Artist.Name}} Discography</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            background: #fafafa;
        }
        h1, h2 {
            text-align: center;
        }
        .discography {
            border-collapse: collapse;
            width: 100%;
            max-width: 1200px;
            margin: 20px auto;
        }
        .discography th, .discography td {
            padding: 10px;
            text-align: left;
            border-bottom: 1px solid #ddd;
        }
        .discography img {
            display: block;
        }
        .discography a {
            color: #000;
            text-decoration: none;
        }
        .discography a:hover {
            text-decoration: underline;
        }
        .track-row td:first-child {
            padding-left: 40px;
        }
        .footer {
            text-align: center;
            color: #888;
            margin: 30px 0;
        }
    </style>
</head>
<body>
    <h1>{{.Artist.Name}} Discography</h1>

    <h2>Albums</h2>
    <table class="discography">
        <tr><th></th><th>Title</th><th>Released</th><th>Length</th><th>Code</th></tr>
        {{range .Albums}}
        <tr>
            <td><a href="{{.SpotifyURL}}"><img src="{{.ImageThumbURI}}" alt="{{.Name}}" width="64"></a></td>
            <td><a href="{{.SpotifyURL}}">{{.Name}}</a></td>
            <td>{{formatDate .ReleaseDate}}</td>
            <td>{{.TrackCount}} tracks</td>
            <td><a href="{{.QRCodeURL}}">scan</a></td>
        </tr>
        {{range .Tracks}}
        <tr class="track-row">
            <td>{{if .TrackNumber}}{{.TrackNumber}}{{end}}</td>
            <td><a href="{{.SpotifyURL}}">{{.Name}}</a></td>
            <td></td>
            <td>{{.Duration}}</td>
            <td><a href="{{.QRCodeURL}}">scan</a></td>
        </tr>
        {{end}}
        {{end}}
    </table>

    <h2>Singles</h2>
    <table class="discography">
        <tr><th></th><th>Title</th><th>Released</th><th>Length</th><th>Code</th></tr>
        {{range .Singles}}
        <tr>
            <td><a href="{{.SpotifyURL}}"><img src="{{.ImageThumbURI}}" alt="{{.Name}}" width="64"></a></td>
            <td><a href="{{.SpotifyURL}}">{{.Name}}</a></td>
            <td>{{formatDate .ReleaseDate}}</td>
            <td>{{.Duration}}</td>
            <td><a href="{{.QRCodeURL}}">scan</a></td>
        </tr>
        {{end}}
    </table>

    <p class="footer">Generated {{.GeneratedAt}}</p>
</body>
</html>
`
