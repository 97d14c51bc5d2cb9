package static

var (
	Part1 = `
    <!DOCTYPE html>
    <html>
    <head>
        <title>Развертка оригами</title>
		<style>
			body {
				background-color: #1F1F1F;
				color: #d3d3d3;
				font-family: Consolas, monospace;
				overflow: hidden;
			}

			#container {
				display: flex;
				width: 100%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
				overflow-y: auto;
			}

			#right-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575;
				overflow-y: auto;
				overflow-x: auto;
				background-color: #1e1e1e;
			}

			#logs {
				white-space: pre-wrap;
				word-wrap: break-word;
				color: #d3d3d3;
				font-family: Consolas, monospace;
			}

			input[type="number"],
			input[type="submit"],
			input[type="button"],
			select,
			textarea {
				background-color: #2b2b2b;
				color: #d3d3d3;
				border: 1px solid #444;
				padding: 5px;
				margin: 5px 0;
				border-radius: 4px;
			}

			textarea {
				width: 90%;
				height: 120px;
			}

			label {
				color: #d3d3d3;
			}

			h1 {
				color: #d3d3d3;
			}

			input[type="submit"]:hover,
			input[type="button"]:hover {
				background-color: #444;
			}

			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #444;
				border-radius: 10px;
			}

			::-webkit-scrollbar-track {
				background-color: #2b2b2b;
			}
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Параметры развертки</h1>
                <form id="pattern-form" method="POST">
                    <label for="pattern">Шаблон:</label>
                    <select id="pattern" name="pattern">
                        <option value="waterbomb">Водяная бомба</option>
                        <option value="grid">Сетка</option>
                        <option value="random">Случайные хорды</option>
                        <option value="custom">Свои отрезки</option>
                        <option value="svg">SVG рисунок</option>
                    </select><br>
                    <label for="size">Размер листа:</label>
                    <input type="number" id="size" name="size" value="400" min="10" max="5000"><br>
                    <label for="count">Делений / хорд (n):</label>
                    <input type="number" id="count" name="count" value="4" min="1" max="200"><br>
                    <label for="epsilon">Точность (epsilon):</label>
                    <input type="number" id="epsilon" name="epsilon" value="0.000001" step="any" min="0.000000001"><br>
                    <label for="merge">Склейка вершин:</label>
                    <input type="number" id="merge" name="merge" value="1" step="any" min="0"><br>
                    <label for="boundary">Искать границу:</label>
                    <input type="checkbox" id="boundary" name="boundary" value="true" checked><br>
                    <label for="segments">Отрезки (x1 y1 x2 y2 цвет):</label><br>
                    <textarea id="segments" name="segments"></textarea><br>
                    <label for="drawing">SVG рисунок:</label>
                    <input type="file" id="drawing-file" accept=".svg,image/svg+xml"><br>
                    <textarea id="drawing" name="drawing"></textarea><br>
                    <input type="submit" value="Построить">
                    <input type="button" id="svg-link" value="SVG">
                    <input type="button" id="fold-link" value="FOLD">
                </form>
    `

	Part2 = `
            </div>
            <div id="right-container">
                <h1>Логи</h1>
                <div id="logs">`

	Part3 = `
                </div>
            </div>
        </div>

        <script>
            const form = document.getElementById('pattern-form');

            // файл не отправляется сам, его текст кладется в поле drawing
            document.getElementById('drawing-file').addEventListener('change', function (e) {
                const file = e.target.files[0];
                if (!file) {
                    return;
                }
                file.text().then(text => {
                    document.getElementById('drawing').value = text;
                    document.getElementById('pattern').value = 'svg';
                });
            });

            function params() {
                return new URLSearchParams(new FormData(form)).toString();
            }

            document.getElementById('svg-link').addEventListener('click', function () {
                window.open('/svg?' + params());
            });

            document.getElementById('fold-link').addEventListener('click', function () {
                window.open('/fold?' + params());
            });

            form.addEventListener('submit', function (e) {
                e.preventDefault();

                fetch('/', {
                    method: 'POST',
                    body: params(),
                    headers: {
                        'Content-Type': 'application/x-www-form-urlencoded'
                    }
                })
                .then(response => {
                    if (!response.ok) {
                        return response.text().then(text => { throw new Error(text); });
                    }
                    return response.text();
                })
                .then(html => {
                    document.open();
                    document.write(html);
                    document.close();
                })
                .catch(error => {
                    console.error('Ошибка:', error);
                    alert(error.message);
                });
            });
        </script>
    </body>
    </html>
    `
)
