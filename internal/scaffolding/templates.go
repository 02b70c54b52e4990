package scaffolding

// Scaffold templates are text/template sources with [[ ]] delimiters, so the
// html/template actions they emit ({{define}}, {{template}}) pass through
// untouched.

// ComponentTemplate is a built-in component skeleton.
type ComponentTemplate struct {
	Name        string
	Description string
	Content     string
}

// TemplateContext is the data every scaffold template is executed with.
type TemplateContext struct {
	// Name is the name as typed by the user, e.g. "user-form".
	Name string
	// Snake is the fragment name, e.g. "user_form".
	Snake string
	// Pascal is the state class prefix, e.g. "UserForm".
	Pascal string

	ProjectName string
	ModulePath  string
	HTMXURL     string
	AlpineURL   string
	TailwindURL string
	WithServer  bool
	WithExample bool
}

// BuiltinComponents returns the component skeletons keyed by type.
func BuiltinComponents() map[string]ComponentTemplate {
	return map[string]ComponentTemplate{
		"basic": {Name: "basic", Description: "Simple component with class-based Alpine.js state", Content: basicComponent},
		"form":  {Name: "form", Description: "Form component with validation state", Content: formComponent},
		"list":  {Name: "list", Description: "List component loading data through HTMX", Content: listComponent},
		"card":  {Name: "card", Description: "Card/widget component with an action", Content: cardComponent},
	}
}

const basicComponent = `<!-- [[.Name]] Component -->
{{define "[[.Snake]]"}}
<div
    x-data="new [[.Pascal]]State()"
    class="bg-white rounded-lg shadow-md p-6"
>
    <h3 class="text-xl font-semibold mb-4">[[.Name]]</h3>
    <p x-text="message"></p>
</div>

<script>
// [[.Pascal]]State holds the component state and logic
class [[.Pascal]]State {
    constructor(message = 'Hello from [[.Name]]!') {
        this.message = message;
    }
}
</script>
{{end}}
`

const formComponent = `<!-- [[.Name]] Form Component -->
{{define "[[.Snake]]"}}
<div
    x-data="new [[.Pascal]]State()"
    class="bg-white rounded-lg shadow-md p-6"
>
    <h3 class="text-xl font-semibold mb-4">[[.Name]]</h3>

    <form @submit.prevent="submit()" class="space-y-4">
        <div>
            <label class="block text-sm font-medium text-gray-700 mb-2">
                Field Name
            </label>
            <input
                type="text"
                x-model="formData.field"
                class="w-full px-4 py-2 border border-gray-300 rounded focus:outline-none focus:ring-2 focus:ring-blue-500"
            />
            <p x-show="error" x-text="error" class="text-sm text-red-600 mt-1"></p>
        </div>

        <button
            type="submit"
            class="bg-blue-500 hover:bg-blue-600 text-white px-6 py-2 rounded"
        >
            Submit
        </button>
    </form>
</div>

<script>
// [[.Pascal]]State holds the form state and logic
class [[.Pascal]]State {
    constructor() {
        this.formData = { field: '' };
        this.error = '';
    }

    submit() {
        if (!this.formData.field.trim()) {
            this.error = 'Field is required';
            return;
        }
        this.error = '';
        console.log('Form submitted:', this.formData);
    }
}
</script>
{{end}}
`

const listComponent = `<!-- [[.Name]] List Component -->
{{define "[[.Snake]]"}}
<div
    x-data="new [[.Pascal]]State()"
    @htmx:after-request="sync($event.detail.xhr.response)"
    class="bg-white rounded-lg shadow-md p-6"
>
    <h3 class="text-xl font-semibold mb-4">[[.Name]]</h3>

    <button
        hx-get="/api/[[.Snake]]"
        hx-trigger="click"
        hx-swap="none"
        class="bg-blue-500 hover:bg-blue-600 text-white px-4 py-2 rounded mb-4"
    >
        Load Items
    </button>

    <ul class="space-y-2">
        <template x-for="item in items" :key="item.id">
            <li class="p-3 bg-gray-50 rounded">
                <span x-text="item.name"></span>
            </li>
        </template>
    </ul>

    <div x-show="items.length === 0" class="text-center text-gray-400 py-8">
        No items found.
    </div>

    <div class="mt-4 text-sm text-gray-600">
        <p>Total items: <span x-text="itemCount"></span></p>
    </div>
</div>

<script>
// [[.Pascal]]State holds the list state; the server owns the items
class [[.Pascal]]State {
    constructor() {
        this.items = [];
    }

    // sync replaces the whole list with the server response
    sync(jsonData) {
        try {
            const data = typeof jsonData === 'string' ? JSON.parse(jsonData) : jsonData;
            this.items = data.items || data || [];
        } catch (e) {
            console.error('Failed to sync data:', e);
        }
    }

    get itemCount() {
        return this.items.length;
    }
}
</script>
{{end}}
`

const cardComponent = `<!-- [[.Name]] Card Component -->
{{define "[[.Snake]]"}}
<div
    x-data="new [[.Pascal]]State()"
    class="bg-white rounded-lg shadow-md overflow-hidden"
>
    <div class="p-6">
        <h3 class="text-xl font-semibold mb-2" x-text="title"></h3>
        <p class="text-gray-600 mb-4" x-text="description"></p>

        <button
            @click="handleAction()"
            class="bg-blue-500 hover:bg-blue-600 text-white px-4 py-2 rounded"
        >
            Action
        </button>
    </div>
</div>

<script>
// [[.Pascal]]State holds the card state and logic
class [[.Pascal]]State {
    constructor(title = '[[.Name]]', description = 'Card description goes here.') {
        this.title = title;
        this.description = description;
    }

    handleAction() {
        console.log('Action clicked');
    }
}
</script>
{{end}}
`

const baseLayout = `{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{template "title" .}}</title>

    <!-- Tailwind CSS -->
    <script src="[[.TailwindURL]]"></script>

    <!-- HTMX -->
    <script src="[[.HTMXURL]]"></script>

    <!-- Alpine.js -->
    <script defer src="[[.AlpineURL]]"></script>
</head>
<body class="bg-gray-50 min-h-screen">
    <div class="container mx-auto px-4 py-8">
        {{template "content" .}}
    </div>
</body>
</html>
{{end}}
`

const counterExample = `<!-- Counter Component: class-based Alpine.js state -->
{{define "counter"}}
<div
    x-data="new CounterState()"
    class="bg-white rounded-lg shadow-md p-6 max-w-md"
>
    <h3 class="text-xl font-semibold mb-4">Counter</h3>

    <div class="flex items-center justify-between mb-4">
        <button
            @click="decrement()"
            class="bg-red-500 hover:bg-red-600 text-white px-4 py-2 rounded"
        >
            -
        </button>

        <span class="text-3xl font-bold" x-text="count"></span>

        <button
            @click="increment()"
            class="bg-green-500 hover:bg-green-600 text-white px-4 py-2 rounded"
        >
            +
        </button>
    </div>

    <button
        @click="reset()"
        class="w-full bg-gray-500 hover:bg-gray-600 text-white px-4 py-2 rounded"
    >
        Reset
    </button>

    <div class="mt-4 text-sm text-gray-600">
        <p>Double: <span x-text="double"></span></p>
    </div>
</div>

<script>
// CounterState encapsulates the counter state and logic
class CounterState {
    constructor(initialCount = 0) {
        this.count = initialCount;
    }

    increment() {
        this.count++;
    }

    decrement() {
        this.count--;
    }

    reset() {
        this.count = 0;
    }

    get double() {
        return this.count * 2;
    }
}
</script>
{{end}}
`

const todoExample = `<!-- Todo List Component: class-based state with whole-value updates -->
{{define "todo"}}
<div
    x-data="new TodoState()"
    class="bg-white rounded-lg shadow-md p-6 max-w-2xl"
>
    <h3 class="text-xl font-semibold mb-4">Todo List</h3>

    <div class="flex gap-2 mb-4">
        <input
            type="text"
            x-model="newTodo"
            @keyup.enter="addTodo()"
            placeholder="Add a new todo..."
            class="flex-1 px-4 py-2 border border-gray-300 rounded focus:outline-none focus:ring-2 focus:ring-blue-500"
        />
        <button
            @click="addTodo()"
            class="bg-blue-500 hover:bg-blue-600 text-white px-6 py-2 rounded"
        >
            Add
        </button>
    </div>

    <ul class="space-y-2">
        <template x-for="todo in todos" :key="todo.id">
            <li class="flex items-center gap-2 p-3 bg-gray-50 rounded">
                <input
                    type="checkbox"
                    :checked="todo.completed"
                    @change="toggleTodo(todo.id)"
                    class="w-5 h-5 text-blue-500"
                />
                <span
                    x-text="todo.text"
                    :class="todo.completed ? 'line-through text-gray-400' : ''"
                    class="flex-1"
                ></span>
                <button
                    @click="removeTodo(todo.id)"
                    class="text-red-500 hover:text-red-700"
                >
                    Delete
                </button>
            </li>
        </template>
    </ul>

    <div x-show="todos.length === 0" class="text-center text-gray-400 py-8">
        No todos yet. Add one above!
    </div>

    <div class="mt-4 text-sm text-gray-600">
        <p>Total: <span x-text="totalCount"></span> | Completed: <span x-text="completedCount"></span></p>
    </div>
</div>

<script>
// TodoState encapsulates the todo list; every update reassigns the list
class TodoState {
    constructor() {
        this.todos = [];
        this.newTodo = '';
    }

    addTodo() {
        const text = this.newTodo.trim();
        if (!text) {
            return;
        }
        this.todos = this.todos.concat([{ id: Date.now(), text: text, completed: false }]);
        this.newTodo = '';
    }

    toggleTodo(id) {
        this.todos = this.todos.map(t => t.id === id ? Object.assign({}, t, { completed: !t.completed }) : t);
    }

    removeTodo(id) {
        this.todos = this.todos.filter(t => t.id !== id);
    }

    get totalCount() {
        return this.todos.length;
    }

    get completedCount() {
        return this.todos.filter(t => t.completed).length;
    }
}
</script>
{{end}}
`

const dataFetchExample = `<!-- Data Fetch Component: HTMX with explicit data flow -->
{{define "data_fetch"}}
<div
    x-data="new DataFetchState()"
    @htmx:before-request="loading = true"
    @htmx:after-request="sync($event.detail.xhr.response)"
    class="bg-white rounded-lg shadow-md p-6 max-w-2xl"
>
    <h3 class="text-xl font-semibold mb-4">Data Fetcher</h3>

    <button
        hx-get="/api/data"
        hx-trigger="click"
        hx-swap="none"
        class="bg-blue-500 hover:bg-blue-600 text-white px-6 py-2 rounded mb-4"
    >
        Load Data
    </button>

    <div x-show="loading" class="text-center py-4">
        <span class="text-gray-500">Loading...</span>
    </div>

    <div x-show="!loading && items.length > 0" class="space-y-2">
        <template x-for="item in items" :key="item.id">
            <div class="p-3 bg-gray-50 rounded border">
                <strong x-text="item.title"></strong>: <span x-text="item.description"></span>
            </div>
        </template>
    </div>

    <div
        x-show="!loading && items.length === 0"
        class="p-4 bg-gray-50 rounded text-center text-gray-400"
    >
        Click the button to load data from the server.
    </div>

    <div class="mt-4 text-sm text-gray-600">
        <p>Items loaded: <span x-text="itemCount"></span></p>
    </div>
</div>

<script>
// DataFetchState keeps a copy of server data; sync replaces it wholesale
class DataFetchState {
    constructor() {
        this.items = [];
        this.loading = false;
    }

    sync(jsonData) {
        try {
            const data = typeof jsonData === 'string' ? JSON.parse(jsonData) : jsonData;
            this.items = data.items || data || [];
        } catch (e) {
            console.error('Failed to sync data:', e);
        }
        this.loading = false;
    }

    get itemCount() {
        return this.items.length;
    }
}
</script>
{{end}}
`

const indexPage = `{{template "base" .}}

{{define "title"}}[[.ProjectName]]{{end}}

{{define "content"}}
<div class="space-y-8">
    <header class="text-center mb-12">
        <h1 class="text-4xl font-bold text-gray-800 mb-2">[[.ProjectName]]</h1>
        <p class="text-lg text-gray-600">Zero-build, zero-magic frontend components</p>
        <p class="text-sm text-gray-500 mt-2">html/template fragments + Alpine.js classes + HTMX</p>
    </header>
[[- if .WithExample]]

    <section class="space-y-6">
        <h2 class="text-2xl font-semibold text-gray-700">Example Components</h2>

        <div class="grid md:grid-cols-2 gap-6">
            <div>{{template "counter" .}}</div>
            <div>{{template "data_fetch" .}}</div>
        </div>

        <div>{{template "todo" .}}</div>
    </section>
[[- else]]

    <section class="text-center text-gray-500">
        <p>Create a component with: zen-temple component my-widget</p>
    </section>
[[- end]]
</div>
{{end}}
`

const serverMain = `// Command server serves [[.ProjectName]].
//
// Pages are rendered with html/template; the API returns JSON for Alpine.js
// state classes to consume.
package main

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"os"
)

type item struct {
	ID          int    ` + "`json:\"id\"`" + `
	Title       string ` + "`json:\"title\"`" + `
	Description string ` + "`json:\"description\"`" + `
}

func main() {
	tmpl := template.Must(template.ParseGlob("templates/layouts/*.html"))
	template.Must(tmpl.ParseGlob("templates/components/*.html"))
	template.Must(tmpl.ParseFiles("templates/index.html"))

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if err := tmpl.ExecuteTemplate(w, "index.html", nil); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	mux.HandleFunc("/api/data", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string][]item{"items": {
			{ID: 1, Title: "Item 1", Description: "Data loaded from server"},
			{ID: 2, Title: "Item 2", Description: "HTMX handles the communication"},
			{ID: 3, Title: "Item 3", Description: "Alpine.js renders the data"},
		}})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("listening on http://localhost:%s", port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
`

const serverGoMod = `module [[.ModulePath]]

go 1.24
`

const serverEnv = `# Development server configuration
PORT=5000
`

const readme = `# [[.ProjectName]]

A zen-temple project: zero-build, zero-magic frontend components.

## Philosophy

- **No build step required**: edit templates and reload
- **No hidden abstractions**: what you see is what runs
- **Template-centered design**: templates are the source of truth
- **Logic in Alpine.js**: state lives in classes referenced from x-data
- **Server returns JSON/HTML**: the server owns the data
- **HTMX for communication**: declarative requests, no manual fetch

## Project Structure

` + "```" + `
[[.ProjectName]]/
├── templates/
│   ├── layouts/
│   │   └── base.html          # Base layout with CDN imports
│   ├── components/            # One {{define}} fragment per file
│   └── index.html             # Main page
├── static/
│   ├── css/
│   └── js/
[[- if .WithServer]]
├── app/
│   └── main.go                # Development server
[[- end]]
└── zen-temple.yaml            # Project configuration
` + "```" + `
[[- if .WithServer]]

## Running the Development Server

` + "```bash" + `
go run ./app
` + "```" + `

Then open http://localhost:5000 in your browser.
[[- end]]

## Creating Components

` + "```bash" + `
zen-temple component user-card --type card
zen-temple validate templates/components
` + "```" + `

Components keep their state in a class and reference it with ` + "`new`" + `:

` + "```html" + `
{{define "greeting"}}
<div x-data="new GreetingState()">
    <span x-text="message"></span>
</div>
<script>
class GreetingState {
    constructor() { this.message = 'Hello'; }
}
</script>
{{end}}
` + "```" + `

## Learn More

- [HTMX Documentation](https://htmx.org/)
- [Alpine.js Documentation](https://alpinejs.dev/)
- [html/template Documentation](https://pkg.go.dev/html/template)
- [Tailwind CSS Documentation](https://tailwindcss.com/)
`
