package analyzer

// indicator names a detectable technology or practice and the substring
// terms that signal it. Terms are matched against the lowercased
// transcript, in table order, so detection output is deterministic.
type indicator struct {
	name  string
	terms []string
}

// languageIndicators signal programming languages present in a session.
var languageIndicators = []indicator{
	{"python", []string{".py", "def ", "import ", "python", "pip", "pytest"}},
	{"javascript", []string{".js", ".ts", ".jsx", ".tsx", "function", "const ", "npm", "node"}},
	{"java", []string{".java", "public class", "import java", "maven", "gradle"}},
	{"c++", []string{".cpp", ".h", "#include", "std::", "cmake"}},
	{"rust", []string{".rs", "fn ", "use ", "cargo", "impl "}},
	{"go", []string{".go", "func ", "package ", "import "}},
	{"html", []string{".html", "<html>", "<div>", "<script>"}},
	{"css", []string{".css", "style", "display:", "margin:"}},
	{"sql", []string{".sql", "SELECT", "FROM", "WHERE", "INSERT"}},
	{"shell", []string{".sh", "#!/bin/bash", "chmod", "mkdir"}},
}

// frameworkIndicators signal frameworks and major libraries.
var frameworkIndicators = []indicator{
	{"react", []string{"react", "jsx", "usestate", "useeffect", "component"}},
	{"vue", []string{"vue", "@click", "v-model", "mounted()"}},
	{"angular", []string{"angular", "@component", "@injectable", "ngmodel"}},
	{"flask", []string{"flask", "app.route", "@app.route", "render_template"}},
	{"django", []string{"django", "models.py", "views.py", "urls.py"}},
	{"express", []string{"express", "app.get", "app.post", "middleware"}},
	{"spring", []string{"spring", "@controller", "@service", "@autowired"}},
	{"tensorflow", []string{"tensorflow", "keras", "model.fit", "neural"}},
	{"pytorch", []string{"pytorch", "torch", "nn.module", "tensor"}},
	{"pandas", []string{"pandas", "dataframe", "pd.read", "groupby"}},
	{"numpy", []string{"numpy", "np.array", "ndarray", "matrix"}},
}

// toolIndicators signal development tooling in use.
var toolIndicators = []indicator{
	{"git", []string{"git add", "git commit", "git push", "git pull"}},
	{"docker", []string{"docker", "dockerfile", "docker-compose"}},
	{"kubernetes", []string{"kubectl", "k8s", "deployment.yaml"}},
	{"aws", []string{"aws", "ec2", "s3", "lambda", "cloudformation"}},
	{"ci/cd", []string{"github actions", "jenkins", "ci.yml", ".github/workflows"}},
	{"testing", []string{"test", "pytest", "jest", "unittest", "mocha"}},
	{"linting", []string{"eslint", "pylint", "flake8", "prettier"}},
}

// patternIndicators signal broader working patterns. A pattern needs at
// least two distinct term hits to register, so a single stray word does
// not classify a whole session.
var patternIndicators = []indicator{
	{"api_development", []string{"api", "endpoint", "rest", "json", "request", "response"}},
	{"database_work", []string{"database", "sql", "query", "table", "migration"}},
	{"frontend_work", []string{"frontend", "ui", "component", "styling", "responsive"}},
	{"backend_work", []string{"backend", "server", "authentication", "middleware"}},
	{"data_analysis", []string{"data", "analysis", "visualization", "statistics"}},
	{"machine_learning", []string{"ml", "model", "training", "prediction", "algorithm"}},
	{"devops", []string{"deployment", "infrastructure", "monitoring", "scaling"}},
	{"security", []string{"authentication", "authorization", "encryption", "security"}},
}

// issueIndicators signal potential quality or security problems worth
// calling out in suggestions.
var issueIndicators = []indicator{
	{"hardcoded_credentials", []string{"password =", "api_key =", "secret =", "token ="}},
	{"missing_error_handling", []string{"except:", "catch", "try:"}},
	{"code_duplication", []string{"todo", "fixme", "hack", "temporary"}},
	{"performance_concerns", []string{"loop", "nested", "n+1", "timeout"}},
	{"security_concerns", []string{"eval(", "exec(", "shell=true", "sql injection"}},
	{"testing_gaps", []string{"# no tests", "untested", "manual testing"}},
}
