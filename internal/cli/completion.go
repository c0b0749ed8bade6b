package cli

import (
	"fmt"
	"io"
	"strings"
)

// LogLevels lists the -log-level values offered by completion scripts.
var LogLevels = []string{"debug", "info", "warn", "error", "disabled"}

// GenerateCompletion writes a shell completion script for polyroots.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish", "powershell").
//   - logLevels: The values completed after -log-level.
//
// Returns:
//   - error: An error if the shell is not supported or the write fails.
func GenerateCompletion(out io.Writer, shell string, logLevels []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, logLevels)
	case "zsh":
		return generateZshCompletion(out, logLevels)
	case "fish":
		return generateFishCompletion(out, logLevels)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, logLevels)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

func generateBashCompletion(out io.Writer, logLevels []string) error {
	script := `# Bash completion script for polyroots
# Add this to your ~/.bashrc or ~/.bash_completion

_polyroots_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="-h -help -version -V -c -coeffs -batch -workers -timeout -json -quiet -q -precision -output -o -server -port -max-coefficients -interactive -no-color -completion -log-level"

    case "${prev}" in
        -log-level)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;
        -completion)
            COMPREPLY=( $(compgen -W "bash zsh fish powershell" -- "${cur}") )
            return 0
            ;;
        -batch|-output|-o)
            COMPREPLY=( $(compgen -f -- "${cur}") )
            return 0
            ;;
        -port)
            COMPREPLY=( $(compgen -W "8080 3000 5000 9000" -- "${cur}") )
            return 0
            ;;
        -timeout)
            COMPREPLY=( $(compgen -W "5s 30s 1m 5m" -- "${cur}") )
            return 0
            ;;
        -precision)
            COMPREPLY=( $(compgen -W "2 4 6 10 17" -- "${cur}") )
            return 0
            ;;
        -c|-coeffs|-workers|-max-coefficients)
            return 0
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _polyroots_completions polyroots
`
	_, err := fmt.Fprintf(out, script, strings.Join(logLevels, " "))
	return err
}

func generateZshCompletion(out io.Writer, logLevels []string) error {
	script := `#compdef polyroots

# Zsh completion script for polyroots
# Add this to your ~/.zshrc or place in $fpath

_polyroots() {
    _arguments -s \
        '(-h -help)'{-h,-help}'[Show help message]' \
        '(-V -version)'{-V,-version}'[Show version information]' \
        '(-c -coeffs)'{-c,-coeffs}'[Coefficients, constant term first]:coefficients:' \
        '-batch[Solve every polynomial in a file]:file:_files' \
        '-workers[Concurrent solves in batch mode]:count:' \
        '-timeout[Maximum execution time]:duration:(5s 30s 1m 5m)' \
        '-json[Output in JSON format]' \
        '(-q -quiet)'{-q,-quiet}'[One root per line for scripts]' \
        '-precision[Decimals per root part]:digits:(2 4 6 10 17)' \
        '(-o -output)'{-o,-output}'[Output file path]:file:_files' \
        '-server[Start HTTP server mode]' \
        '-port[Server port]:port:(8080 3000 5000 9000)' \
        '-max-coefficients[Largest accepted coefficient list]:count:' \
        '-interactive[Start interactive REPL mode]' \
        '-no-color[Disable colored output]' \
        '-completion[Generate completion script]:shell:(bash zsh fish powershell)' \
        '-log-level[Diagnostic log level]:level:(%s)'
}

_polyroots "$@"
`
	_, err := fmt.Fprintf(out, script, strings.Join(logLevels, " "))
	return err
}

func generateFishCompletion(out io.Writer, logLevels []string) error {
	script := `# Fish completion script for polyroots
# Add this to ~/.config/fish/completions/polyroots.fish

complete -c polyroots -f

complete -c polyroots -s h -o help -d 'Show help message'
complete -c polyroots -s V -o version -d 'Show version information'

# Input
complete -c polyroots -s c -o coeffs -d 'Coefficients, constant term first' -x
complete -c polyroots -o batch -d 'Solve every polynomial in a file' -rF
complete -c polyroots -o workers -d 'Concurrent solves in batch mode' -x
complete -c polyroots -o timeout -d 'Maximum execution time' -xa '5s 30s 1m 5m'
complete -c polyroots -o max-coefficients -d 'Largest accepted coefficient list' -x

# Output
complete -c polyroots -o json -d 'Output in JSON format'
complete -c polyroots -s q -o quiet -d 'One root per line for scripts'
complete -c polyroots -o precision -d 'Decimals per root part' -xa '2 4 6 10 17'
complete -c polyroots -s o -o output -d 'Output file path' -rF
complete -c polyroots -o no-color -d 'Disable colored output'
complete -c polyroots -o log-level -d 'Diagnostic log level' -xa '%s'

# Modes
complete -c polyroots -o server -d 'Start HTTP server mode'
complete -c polyroots -o port -d 'Server port' -xa '8080 3000 5000 9000'
complete -c polyroots -o interactive -d 'Start interactive REPL mode'
complete -c polyroots -o completion -d 'Generate completion script' -xa 'bash zsh fish powershell'
`
	_, err := fmt.Fprintf(out, script, strings.Join(logLevels, " "))
	return err
}

func generatePowerShellCompletion(out io.Writer, logLevels []string) error {
	script := `# PowerShell completion script for polyroots
# Add this to your $PROFILE

$polyrootsLogLevels = @(%s)

Register-ArgumentCompleter -CommandName 'polyroots' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
        @{Name = '-help'; Description = 'Show help message' }
        @{Name = '-version'; Description = 'Show version information' }
        @{Name = '-c'; Description = 'Coefficients, constant term first' }
        @{Name = '-coeffs'; Description = 'Coefficients, constant term first' }
        @{Name = '-batch'; Description = 'Solve every polynomial in a file' }
        @{Name = '-workers'; Description = 'Concurrent solves in batch mode' }
        @{Name = '-timeout'; Description = 'Maximum execution time' }
        @{Name = '-json'; Description = 'Output in JSON format' }
        @{Name = '-quiet'; Description = 'One root per line for scripts' }
        @{Name = '-precision'; Description = 'Decimals per root part' }
        @{Name = '-output'; Description = 'Output file path' }
        @{Name = '-server'; Description = 'Start HTTP server mode' }
        @{Name = '-port'; Description = 'Server port' }
        @{Name = '-max-coefficients'; Description = 'Largest accepted coefficient list' }
        @{Name = '-interactive'; Description = 'Start interactive REPL mode' }
        @{Name = '-no-color'; Description = 'Disable colored output' }
        @{Name = '-completion'; Description = 'Generate completion script' }
        @{Name = '-log-level'; Description = 'Diagnostic log level' }
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    switch ($prevElement) {
        '-log-level' {
            $polyrootsLogLevels | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }
        '-completion' {
            @('bash', 'zsh', 'fish', 'powershell') | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`
	quoted := make([]string, len(logLevels))
	for i, level := range logLevels {
		quoted[i] = fmt.Sprintf("'%s'", level)
	}
	_, err := fmt.Fprintf(out, script, strings.Join(quoted, ", "))
	return err
}
