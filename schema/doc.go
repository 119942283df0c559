// Package schema declares the configuration of the mirror service.
//
// A configuration file looks like:
//
//	{
//	    "user": "mirror",
//	    "group": "mirror",
//	    "pid_file": "/run/mirror-server.pid",
//	    "data_path": "/srv/mirror",
//	    "log": {"log_path": "/var/log/mirror-server.log", "log_level": "Info", "max_log_days": 30},
//	    "server_protocols": {"http": {"address": "0.0.0.0", "port": 80}},
//	    "client_protocols": {"rsync": {"exec": "rsync", "interval": 3600, "max_connection": 10}},
//	    "distros": ["debian", "ubuntu"]
//	}
//
// The protocol sections and distros are optional.
package schema
