package main

import (
	"flag"
	"fmt"
	"os"
)

func completionCmd() {
	fs := flag.NewFlagSet("completion", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: harlog completion <bash|zsh|fish>\n\n")
		fmt.Fprintf(os.Stderr, "Generate shell completion scripts.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  harlog completion bash > /usr/local/etc/bash_completion.d/harlog\n")
		fmt.Fprintf(os.Stderr, "  harlog completion zsh > \"${fpath[1]}/_harlog\"\n")
		fmt.Fprintf(os.Stderr, "  harlog completion fish > ~/.config/fish/completions/harlog.fish\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: shell name is required (bash, zsh, or fish)\n\n")
		fs.Usage()
		os.Exit(1)
	}

	script, err := completionScript(fs.Arg(0))
	if err != nil {
		fatalf(1, "%v", err)
	}
	fmt.Print(script)
}

func completionScript(shell string) (string, error) {
	switch shell {
	case "bash":
		return bashCompletion, nil
	case "zsh":
		return zshCompletion, nil
	case "fish":
		return fishCompletion, nil
	}
	return "", fmt.Errorf("unsupported shell %q (use bash, zsh, or fish)", shell)
}

const bashCompletion = `# bash completion for harlog                             -*- shell-script -*-

_harlog() {
    local cur prev words cword
    _init_completion || return

    local commands="list show convert curl diff validate history completion version help"
    local history_commands="index list search clear"

    local list_flags="--filter --no-color"
    local show_flags="--index --filter --no-color"
    local convert_flags="--output --creator-name --creator-version"
    local curl_flags="--index --copy"
    local diff_flags="--context --no-color"
    local history_flags="--db --no-color --limit --method --status --url --fuzzy"
    local shells="bash zsh fish"

    if [[ ${cword} -eq 1 ]]; then
        COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
        return
    fi

    local command="${words[1]}"

    case "${prev}" in
        --output|--db)
            _filedir
            return
            ;;
        --filter|--index|--context|--creator-name|--creator-version|--limit|--status|--url)
            return
            ;;
        --method)
            COMPREPLY=($(compgen -W "GET POST PUT PATCH DELETE HEAD OPTIONS" -- "${cur}"))
            return
            ;;
    esac

    case "${command}" in
        list|show|convert|curl|diff)
            local flags_var="${command}_flags"
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${!flags_var}" -- "${cur}"))
            else
                _filedir '@(jsonl|har)'
            fi
            ;;
        validate)
            _filedir '@(jsonl|har)'
            ;;
        history)
            if [[ ${cword} -eq 2 ]]; then
                COMPREPLY=($(compgen -W "${history_commands}" -- "${cur}"))
            elif [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${history_flags}" -- "${cur}"))
            elif [[ "${words[2]}" == "index" ]]; then
                _filedir '@(jsonl|har)'
            fi
            ;;
        completion)
            COMPREPLY=($(compgen -W "${shells}" -- "${cur}"))
            ;;
    esac
}

complete -F _harlog harlog
`

const zshCompletion = `#compdef harlog

# zsh completion for harlog

_harlog() {
    local -a commands
    commands=(
        'list:List entries in a JSONL log or HAR document'
        'show:Print entries as highlighted JSON'
        'convert:Merge a JSONL log into a HAR document'
        'curl:Print an entry as a curl command'
        'diff:Compare two entries'
        'validate:Check JSONL logs and HAR documents'
        'history:Index, list and search the SQLite history'
        'completion:Generate shell completion scripts'
        'version:Print version information'
        'help:Show help message'
    )

    _arguments -C \
        '1:command:->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe -t commands 'harlog commands' commands
            ;;
        args)
            case $words[1] in
                list)
                    _arguments \
                        '--filter[JavaScript expression selecting entries]:expression:' \
                        '--no-color[Disable colored output]' \
                        '*:log file:_files -g "*.(jsonl|har)"'
                    ;;
                show)
                    _arguments \
                        '--index[Entry index]:index:' \
                        '--filter[JavaScript expression selecting entries]:expression:' \
                        '--no-color[Disable colored output]' \
                        '*:log file:_files -g "*.(jsonl|har)"'
                    ;;
                convert)
                    _arguments \
                        '--output[HAR document to create or extend]:output file:_files -g "*.har"' \
                        '--creator-name[Creator name]:name:' \
                        '--creator-version[Creator version]:version:' \
                        '*:log file:_files -g "*.(jsonl|har)"'
                    ;;
                curl)
                    _arguments \
                        '--index[Entry index]:index:' \
                        '--copy[Copy the command to the clipboard]' \
                        '*:log file:_files -g "*.(jsonl|har)"'
                    ;;
                diff)
                    _arguments \
                        '--context[Unchanged lines around each change]:lines:' \
                        '--no-color[Disable colored output]' \
                        '1:log file:_files -g "*.(jsonl|har)"'
                    ;;
                validate)
                    _arguments \
                        '*:log file:_files -g "*.(jsonl|har)"'
                    ;;
                history)
                    _arguments \
                        '1:history command:(index list search clear)' \
                        '--db[History database path]:database:_files' \
                        '--no-color[Disable colored output]' \
                        '--limit[Maximum number of entries]:limit:' \
                        '--method[Only entries with this method]:method:(GET POST PUT PATCH DELETE HEAD OPTIONS)' \
                        '--status[Only entries with this status code]:status:' \
                        '--url[Only entries whose URL contains this text]:text:' \
                        '--fuzzy[Rank by fuzzy match]' \
                        '*:file:_files'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_harlog "$@"
`

const fishCompletion = `# fish completion for harlog

complete -c harlog -f

complete -c harlog -n '__fish_use_subcommand' -a list -d 'List entries in a JSONL log or HAR document'
complete -c harlog -n '__fish_use_subcommand' -a show -d 'Print entries as highlighted JSON'
complete -c harlog -n '__fish_use_subcommand' -a convert -d 'Merge a JSONL log into a HAR document'
complete -c harlog -n '__fish_use_subcommand' -a curl -d 'Print an entry as a curl command'
complete -c harlog -n '__fish_use_subcommand' -a diff -d 'Compare two entries'
complete -c harlog -n '__fish_use_subcommand' -a validate -d 'Check JSONL logs and HAR documents'
complete -c harlog -n '__fish_use_subcommand' -a history -d 'Index, list and search the SQLite history'
complete -c harlog -n '__fish_use_subcommand' -a completion -d 'Generate shell completion scripts'
complete -c harlog -n '__fish_use_subcommand' -a version -d 'Print version information'
complete -c harlog -n '__fish_use_subcommand' -a help -d 'Show help message'

complete -c harlog -n '__fish_seen_subcommand_from list show' -l filter -d 'JavaScript expression selecting entries' -r
complete -c harlog -n '__fish_seen_subcommand_from list show diff history' -l no-color -d 'Disable colored output'
complete -c harlog -n '__fish_seen_subcommand_from show curl' -l index -d 'Entry index' -r
complete -c harlog -n '__fish_seen_subcommand_from curl' -l copy -d 'Copy the command to the clipboard'
complete -c harlog -n '__fish_seen_subcommand_from convert' -l output -d 'HAR document to create or extend' -rF
complete -c harlog -n '__fish_seen_subcommand_from convert' -l creator-name -d 'Creator name' -r
complete -c harlog -n '__fish_seen_subcommand_from convert' -l creator-version -d 'Creator version' -r
complete -c harlog -n '__fish_seen_subcommand_from diff' -l context -d 'Unchanged lines around each change' -r
complete -c harlog -n '__fish_seen_subcommand_from list show convert curl diff validate' -F

complete -c harlog -n '__fish_seen_subcommand_from history' -a 'index list search clear'
complete -c harlog -n '__fish_seen_subcommand_from history' -l db -d 'History database path' -rF
complete -c harlog -n '__fish_seen_subcommand_from history' -l limit -d 'Maximum number of entries' -r
complete -c harlog -n '__fish_seen_subcommand_from history' -l method -d 'Only entries with this method' -ra 'GET POST PUT PATCH DELETE HEAD OPTIONS'
complete -c harlog -n '__fish_seen_subcommand_from history' -l status -d 'Only entries with this status code' -r
complete -c harlog -n '__fish_seen_subcommand_from history' -l url -d 'Only entries whose URL contains this text' -r
complete -c harlog -n '__fish_seen_subcommand_from history' -l fuzzy -d 'Rank by fuzzy match'

complete -c harlog -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish' -d 'Shell type'
`
